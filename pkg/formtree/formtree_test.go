package formtree_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gdpr/pkg/formtree"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("flat keys", func(t *testing.T) {
		t.Parallel()

		tree := formtree.Parse(url.Values{
			"option_page": {"gdpr"},
			"banner":      {"first", "second"},
		})
		assert.Equal(t, "gdpr", tree.String("option_page"))
		assert.Equal(t, "second", tree.String("banner"))
	})

	t.Run("nested keys", func(t *testing.T) {
		t.Parallel()

		tree := formtree.Parse(url.Values{
			"popup[analytics][name]":                      {"Analytics"},
			"popup[analytics][hosts][google.com][name]":   {"google.com"},
			"popup[analytics][hosts][google.com][optout]": {"https://tools.google.com"},
			"popup[necessary][always_active]":             {"on"},
		})

		popup := tree.Map("popup")
		require.NotNil(t, popup)
		analytics, ok := popup["analytics"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Analytics", analytics["name"])

		hosts, ok := analytics["hosts"].(map[string]any)
		require.True(t, ok)
		host, ok := hosts["google.com"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "google.com", host["name"])
		assert.Equal(t, "https://tools.google.com", host["optout"])

		necessary, ok := popup["necessary"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "on", necessary["always_active"])
	})

	t.Run("empty brackets append", func(t *testing.T) {
		t.Parallel()

		tree := formtree.Parse(url.Values{"ids[]": {"a", "b"}})
		ids := tree.Map("ids")
		assert.Equal(t, map[string]any{"0": "a", "1": "b"}, ids)
	})

	t.Run("malformed keys ignored", func(t *testing.T) {
		t.Parallel()

		tree := formtree.Parse(url.Values{
			"[x]":      {"1"},
			"a[b":      {"2"},
			"a[b]junk": {"3"},
		})
		assert.Empty(t, tree)
	})

	t.Run("nested value replaces scalar", func(t *testing.T) {
		t.Parallel()

		tree := formtree.Parse(url.Values{
			"a":    {"scalar"},
			"a[b]": {"nested"},
		})
		assert.Equal(t, map[string]any{"b": "nested"}, tree.Map("a"))
	})
}
