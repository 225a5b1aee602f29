package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gdpr/pkg/sanitizer"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "valid", input: "a@x.com", expected: "a@x.com"},
		{name: "trimmed", input: "  b@x.com ", expected: "b@x.com"},
		{name: "plus addressing", input: "jane+gdpr@example.org", expected: "jane+gdpr@example.org"},
		{name: "display name rejected", input: "Jane <jane@example.org>", expected: ""},
		{name: "missing at", input: "jane.example.org", expected: ""},
		{name: "missing tld", input: "jane@localhost", expected: ""},
		{name: "list rejected", input: "a@x.com, b@x.com", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Email(tt.input))
		})
	}
}

func TestIsEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, sanitizer.IsEmail("a@x.com"))
	assert.False(t, sanitizer.IsEmail("nope"))
	assert.False(t, sanitizer.IsEmail(""))
}
