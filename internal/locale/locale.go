package locale

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embedded embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds the loaded catalogs and the language matcher over them.
type Bundle struct {
	catalog  catalog.Catalog
	tags     []language.Tag
	matcher  language.Matcher
	fallback language.Tag
}

// LoadEmbedded loads the catalogs shipped with the binary.
func LoadEmbedded(fallback language.Tag) (*Bundle, error) {
	return Load(embedded, fallback)
}

// Load reads locales/*.yaml from fsys. fallback is the language of the
// message ids and is always supported.
func Load(fsys fs.FS, fallback language.Tag) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(paths) == 0 {
		return nil, ErrNoCatalogs
	}
	sort.Strings(paths)

	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	tags := []language.Tag{fallback}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Join(ErrInvalidCatalog, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("%s: %w", path, err))
		}
		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("%s: locale %q: %w", path, file.Locale, err))
		}
		for key, msg := range file.Messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("%s: %q: %w", path, key, err))
			}
		}
		if tag != fallback {
			tags = append(tags, tag)
		}
	}

	return &Bundle{
		catalog:  builder,
		tags:     tags,
		matcher:  language.NewMatcher(tags),
		fallback: fallback,
	}, nil
}

// Tags lists supported languages, fallback first.
func (b *Bundle) Tags() []language.Tag {
	return append([]language.Tag(nil), b.tags...)
}

// Match picks the best supported language for an Accept-Language value.
func (b *Bundle) Match(acceptLanguage string) language.Tag {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.fallback
	}
	return b.tags[idx]
}

// Printer returns a printer for tag backed by the bundle.
func (b *Bundle) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(b.catalog))
}

type printerKey struct{}

// ContextKey is the key the request printer is stored under.
var ContextKey any = printerKey{}

// WithPrinter stores p in ctx.
func WithPrinter(ctx context.Context, p *message.Printer) context.Context {
	return context.WithValue(ctx, ContextKey, p)
}

var englishPrinter = message.NewPrinter(language.English, message.Catalog(catalog.NewBuilder()))

// Printer returns the printer stored in ctx, or an English one.
func Printer(ctx context.Context) *message.Printer {
	if p, ok := ctx.Value(ContextKey).(*message.Printer); ok && p != nil {
		return p
	}
	return englishPrinter
}

// T translates key and formats args with the printer from ctx.
func T(ctx context.Context, key string, args ...any) string {
	return Printer(ctx).Sprintf(key, args...)
}
