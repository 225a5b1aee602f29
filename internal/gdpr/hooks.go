package gdpr

import "context"

// TabsFilter may add, remove or reorder settings tabs.
type TabsFilter func(ctx context.Context, tabs []SettingsTab) []SettingsTab

// HasContentFilter extends content detection. It receives the result so far.
type HasContentFilter func(ctx context.Context, user User, has bool) (bool, error)

// BeforeDeleteAction runs before an account is deleted so other components
// can purge related data. An error aborts the deletion.
type BeforeDeleteAction func(ctx context.Context, user User) error

// Hooks are the extension points of the service.
type Hooks struct {
	SettingsTabs []TabsFilter
	HasContent   []HasContentFilter
	BeforeDelete []BeforeDeleteAction
}

func (h Hooks) applyTabs(ctx context.Context, tabs []SettingsTab) []SettingsTab {
	for _, f := range h.SettingsTabs {
		tabs = f(ctx, tabs)
	}
	return tabs
}

func (h Hooks) applyHasContent(ctx context.Context, user User) (bool, error) {
	has := false
	for _, f := range h.HasContent {
		var err error
		if has, err = f(ctx, user, has); err != nil {
			return false, err
		}
	}
	return has, nil
}

func (h Hooks) runBeforeDelete(ctx context.Context, user User) error {
	for _, a := range h.BeforeDelete {
		if err := a(ctx, user); err != nil {
			return err
		}
	}
	return nil
}
