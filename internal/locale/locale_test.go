package locale_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/gdpr/internal/locale"
)

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()

	b, err := locale.LoadEmbedded(language.English)
	require.NoError(t, err)
	assert.Contains(t, b.Tags(), language.French)
	assert.Contains(t, b.Tags(), language.German)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	b, err := locale.LoadEmbedded(language.English)
	require.NoError(t, err)

	tests := []struct {
		accept string
		want   language.Tag
	}{
		{accept: "", want: language.English},
		{accept: "fr-FR,fr;q=0.9,en;q=0.8", want: language.French},
		{accept: "de-AT", want: language.German},
		{accept: "ja", want: language.English},
		{accept: "not a header;;", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			t.Parallel()
			got := b.Match(tt.accept)
			base, _ := got.Base()
			wantBase, _ := tt.want.Base()
			assert.Equal(t, wantBase, base)
		})
	}
}

func TestT(t *testing.T) {
	t.Parallel()

	b, err := locale.LoadEmbedded(language.English)
	require.NoError(t, err)

	t.Run("translated with args", func(t *testing.T) {
		t.Parallel()
		ctx := locale.WithPrinter(context.Background(), b.Printer(language.French))
		assert.Equal(t, "L'utilisateur a@b.co a été supprimé du site.", locale.T(ctx, "User %s was deleted from the site.", "a@b.co"))
	})

	t.Run("missing key falls back to id", func(t *testing.T) {
		t.Parallel()
		ctx := locale.WithPrinter(context.Background(), b.Printer(language.German))
		assert.Equal(t, "Untranslated 3", locale.T(ctx, "Untranslated %d", 3))
	})

	t.Run("no printer in context", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "User x was added to the deletion table.", locale.T(context.Background(), "User %s was added to the deletion table.", "x"))
	})
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty fs", func(t *testing.T) {
		t.Parallel()
		_, err := locale.Load(fstest.MapFS{}, language.English)
		assert.ErrorIs(t, err, locale.ErrNoCatalogs)
	})

	t.Run("bad locale", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"locales/xx.yaml": {Data: []byte("locale: \"!!\"\nmessages: {}\n")}}
		_, err := locale.Load(fsys, language.English)
		assert.ErrorIs(t, err, locale.ErrInvalidCatalog)
	})

	t.Run("bad yaml", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"locales/fr.yaml": {Data: []byte("locale: [")}}
		_, err := locale.Load(fsys, language.English)
		assert.ErrorIs(t, err, locale.ErrInvalidCatalog)
	})
}
