package gdpr

import (
	"fmt"
	"sync"
)

// Persisted option keys.
const (
	OptionRequests       = "gdpr_requests"
	OptionBannerContent  = "gdpr_cookie_banner_content"
	OptionPrivacyExcerpt = "gdpr_cookie_privacy_excerpt"
	OptionPopupContent   = "gdpr_cookie_popup_content"
)

// Admin pages, the settings group and the cookie section.
const (
	SettingsGroup = "gdpr"
	SettingsPage  = "gdpr-settings"
	RequestsPage  = "gdpr-requests"
	CookieSection = "cookie_banner_section"
)

// FieldKind selects the editor a settings field is rendered with.
type FieldKind string

const (
	FieldTextarea         FieldKind = "textarea"
	FieldCookieCategories FieldKind = "cookie_categories"
)

// Setting is a registered option with its sanitizer.
type Setting struct {
	Group    string
	Key      string
	Sanitize SanitizeFunc
}

// Section groups fields on a settings page.
type Section struct {
	ID    string
	Title string
	Page  string
}

// Field is an editable setting shown inside a section.
type Field struct {
	ID      string
	Title   string
	Page    string
	Section string
	Kind    FieldKind
	// LabelFor names the option the field edits.
	LabelFor    string
	Description string
}

// Registry holds settings, sections and fields in registration order.
// It must be filled before pages are rendered.
type Registry struct {
	mu       sync.RWMutex
	settings []Setting
	sections []Section
	fields   []Field
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an option to group with its sanitize callback.
func (r *Registry) Register(group, key string, sanitize SanitizeFunc) error {
	if key == "" || group == "" {
		return ErrEmptyKey
	}
	if sanitize == nil {
		return fmt.Errorf("%w: %s", ErrNilSanitizer, key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.settings {
		if s.Key == key {
			return fmt.Errorf("%w: %s", ErrDuplicateSetting, key)
		}
	}
	r.settings = append(r.settings, Setting{Group: group, Key: key, Sanitize: sanitize})
	return nil
}

// AddSection adds a section to page.
func (r *Registry) AddSection(id, title, page string) error {
	if id == "" || page == "" {
		return ErrEmptyKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sections {
		if s.ID == id && s.Page == page {
			return fmt.Errorf("%w: %s", ErrDuplicateSection, id)
		}
	}
	r.sections = append(r.sections, Section{ID: id, Title: title, Page: page})
	return nil
}

// AddField adds f to an existing section.
func (r *Registry) AddField(f Field) error {
	if f.LabelFor == "" {
		return fmt.Errorf("%w: %s", ErrMissingLabelFor, f.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for _, s := range r.sections {
		if s.ID == f.Section && s.Page == f.Page {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s on %s", ErrUnknownSection, f.Section, f.Page)
	}
	r.fields = append(r.fields, f)
	return nil
}

// Settings returns the settings registered for group.
func (r *Registry) Settings(group string) []Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Setting
	for _, s := range r.settings {
		if s.Group == group {
			out = append(out, s)
		}
	}
	return out
}

// Sections returns the sections of page.
func (r *Registry) Sections(page string) []Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Section
	for _, s := range r.sections {
		if s.Page == page {
			out = append(out, s)
		}
	}
	return out
}

// Fields returns the fields of a section.
func (r *Registry) Fields(page, section string) []Field {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Field
	for _, f := range r.fields {
		if f.Page == page && f.Section == section {
			out = append(out, f)
		}
	}
	return out
}

// RegisterCookieSettings registers the cookie banner options, their section
// and their fields.
func RegisterCookieSettings(r *Registry) error {
	steps := []func() error{
		func() error { return r.Register(SettingsGroup, OptionBannerContent, SanitizeText) },
		func() error { return r.Register(SettingsGroup, OptionPrivacyExcerpt, SanitizeText) },
		func() error { return r.Register(SettingsGroup, OptionPopupContent, SanitizePopup) },
		func() error { return r.AddSection(CookieSection, "Cookie Settings", SettingsPage) },
		func() error {
			return r.AddField(Field{
				ID: OptionBannerContent, Title: "Banner content",
				Page: SettingsPage, Section: CookieSection,
				Kind: FieldTextarea, LabelFor: OptionBannerContent,
			})
		},
		func() error {
			return r.AddField(Field{
				ID: OptionPrivacyExcerpt, Title: "Cookie Privacy Excerpt",
				Page: SettingsPage, Section: CookieSection,
				Kind: FieldTextarea, LabelFor: OptionPrivacyExcerpt,
			})
		},
		func() error {
			return r.AddField(Field{
				ID: OptionPopupContent, Title: "Cookie Categories",
				Page: SettingsPage, Section: CookieSection,
				Kind: FieldCookieCategories, LabelFor: OptionPopupContent,
			})
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// SettingsTab is a tab on the settings page.
type SettingsTab struct {
	Key  string
	Name string
	Page string
}

// DefaultSettingsTabs is the tab list before filters run.
func DefaultSettingsTabs() []SettingsTab {
	return []SettingsTab{{Key: "cookies", Name: "Cookies", Page: SettingsPage}}
}

// SettingsValues are the stored cookie banner options.
type SettingsValues struct {
	BannerContent  string
	PrivacyExcerpt string
	PopupContent   PopupContent
}

// Text returns the value of a text option by key.
func (v SettingsValues) Text(key string) string {
	switch key {
	case OptionBannerContent:
		return v.BannerContent
	case OptionPrivacyExcerpt:
		return v.PrivacyExcerpt
	}
	return ""
}
