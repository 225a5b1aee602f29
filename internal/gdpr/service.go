package gdpr

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/gdpr/internal/locale"
	"github.com/dmitrymomot/gdpr/pkg/logger"
	"github.com/dmitrymomot/gdpr/pkg/options"
	"github.com/dmitrymomot/gdpr/pkg/sanitizer"
)

// UserDirectory resolves and deletes site accounts.
type UserDirectory interface {
	// UserByEmail returns ErrUserNotFound when no account matches.
	UserByEmail(ctx context.Context, email string) (User, error)
	// UserByID returns ErrUserNotFound when no account matches.
	UserByID(ctx context.Context, id int64) (User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ContentIndex answers content ownership questions.
type ContentIndex interface {
	PublicPostTypes(ctx context.Context) ([]string, error)
	CountUserPosts(ctx context.Context, userID int64, postType string) (int, error)
	CountCommentsByEmail(ctx context.Context, email string, includeUnapproved bool) (int, error)
}

// Service runs the settings and deletion workflows.
type Service struct {
	store    options.Store
	users    UserDirectory
	content  ContentIndex
	registry *Registry
	hooks    Hooks
	logger   *slog.Logger
	now      func() time.Time

	// mu serialises read-modify-write of the requests list in this process.
	mu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now for request dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRegistry replaces the default cookie settings registry.
func WithRegistry(r *Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithSettingsTabsFilter adds a settings tabs filter.
func WithSettingsTabsFilter(f TabsFilter) Option {
	return func(s *Service) {
		s.hooks.SettingsTabs = append(s.hooks.SettingsTabs, f)
	}
}

// WithHasContentFilter adds a content detection filter.
func WithHasContentFilter(f HasContentFilter) Option {
	return func(s *Service) {
		s.hooks.HasContent = append(s.hooks.HasContent, f)
	}
}

// WithBeforeDelete adds an action run before an account is deleted.
func WithBeforeDelete(a BeforeDeleteAction) Option {
	return func(s *Service) {
		s.hooks.BeforeDelete = append(s.hooks.BeforeDelete, a)
	}
}

// NewService creates a Service. Without WithRegistry the cookie settings
// are registered on a fresh registry.
func NewService(store options.Store, users UserDirectory, content ContentIndex, opts ...Option) (*Service, error) {
	s := &Service{
		store:   store,
		users:   users,
		content: content,
		logger:  logger.NewNope(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = NewRegistry()
		if err := RegisterCookieSettings(s.registry); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Registry returns the settings registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Requests returns the persisted requests list.
func (s *Service) Requests(ctx context.Context) ([]DataRequest, error) {
	list, err := options.Get[[]DataRequest](ctx, s.store, OptionRequests, nil)
	if err != nil {
		return nil, errors.Join(ErrLoadRequests, err)
	}
	return list, nil
}

func (s *Service) saveRequests(ctx context.Context, list []DataRequest) error {
	if list == nil {
		list = []DataRequest{}
	}
	if err := options.Set[[]DataRequest](ctx, s.store, OptionRequests, list, nil); err != nil {
		return errors.Join(ErrSaveRequests, err)
	}
	return nil
}

// Board loads the requests and groups them by type. Deletion rows are
// annotated with content ownership.
func (s *Service) Board(ctx context.Context) (Board, error) {
	list, err := s.Requests(ctx)
	if err != nil {
		return Board{}, err
	}
	board := NewBoard(list)
	for i, bucket := range board.Buckets {
		if bucket.Type != RequestDelete {
			continue
		}
		for j, row := range bucket.Rows {
			user, err := s.users.UserByEmail(ctx, row.Email)
			if err != nil {
				if !errors.Is(err, ErrUserNotFound) {
					return Board{}, err
				}
				continue
			}
			has, err := s.UserHasContent(ctx, user)
			if err != nil {
				return Board{}, err
			}
			board.Buckets[i].Rows[j].HasContent = has
		}
	}
	return board, nil
}

// AddDeletionRequest queues a deletion request for the account owning email.
// It fails with ErrUserNotFound for unknown or invalid addresses and with
// ErrDuplicateRequest when the address is already queued. The returned
// Notice describes the outcome in both the success and business error cases.
func (s *Service) AddDeletionRequest(ctx context.Context, rawEmail string) (Notice, error) {
	email := sanitizer.Email(rawEmail)
	if email == "" {
		return s.userNotFound(ctx), errors.Join(ErrUserNotFound, ErrInvalidEmail)
	}
	if _, err := s.users.UserByEmail(ctx, email); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return s.userNotFound(ctx), err
		}
		return Notice{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Requests(ctx)
	if err != nil {
		return Notice{}, err
	}
	if indexOf(list, email, RequestDelete) >= 0 {
		return Notice{
			Setting: NoticeSettingRequests,
			Code:    CodeDuplicate,
			Message: locale.T(ctx, "User already placed a deletion request."),
			Type:    NoticeError,
		}, ErrDuplicateRequest
	}

	list = append(list, NewDeletionRequest(email, s.now()))
	if err := s.saveRequests(ctx, list); err != nil {
		return Notice{}, err
	}

	s.logger.InfoContext(ctx, "deletion request added", slog.String("email", email))
	return Notice{
		Setting: NoticeSettingRequests,
		Code:    CodeNewRequest,
		Message: locale.T(ctx, "User %s was added to the deletion table.", email),
		Type:    NoticeUpdated,
	}, nil
}

// RemoveDeletionRequest removes the first deletion request for email and
// leaves other entries untouched. A miss returns ErrRequestNotFound.
func (s *Service) RemoveDeletionRequest(ctx context.Context, rawEmail string) (Notice, error) {
	email := sanitizer.Email(rawEmail)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.removeRequest(ctx, email, RequestDelete)
	if err != nil {
		return Notice{}, err
	}
	if !removed {
		return Notice{
			Setting: NoticeSettingRequests,
			Code:    CodeRequestNotFound,
			Message: locale.T(ctx, "No deletion request found for %s.", displayEmail(rawEmail, email)),
			Type:    NoticeError,
		}, ErrRequestNotFound
	}

	s.logger.InfoContext(ctx, "deletion request removed", slog.String("email", email))
	return Notice{
		Setting: NoticeSettingRequests,
		Code:    CodeRemoveRequest,
		Message: locale.T(ctx, "User %s was removed from the deletion table.", email),
		Type:    NoticeUpdated,
	}, nil
}

// ExecuteDeletion deletes the account owning email and drops its deletion
// request. BeforeDelete hooks run first; the first failing hook aborts.
// A missing account returns ErrUserNotFound without touching the list.
// Once the account is gone the call succeeds; a queue entry that could not
// be removed adds a warning notice.
func (s *Service) ExecuteDeletion(ctx context.Context, rawEmail string) ([]Notice, error) {
	email := sanitizer.Email(rawEmail)
	if email == "" {
		return []Notice{s.userNotFound(ctx)}, errors.Join(ErrUserNotFound, ErrInvalidEmail)
	}
	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return []Notice{s.userNotFound(ctx)}, err
		}
		return nil, err
	}

	if err := s.hooks.runBeforeDelete(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "before delete hook failed",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err),
		)
		return []Notice{{
			Setting: NoticeSettingRequests,
			Code:    CodeDeleteFailed,
			Message: locale.T(ctx, "User %s could not be deleted.", email),
			Type:    NoticeError,
		}}, errors.Join(ErrDeleteAborted, err)
	}

	if err := s.users.DeleteUser(ctx, user.ID); err != nil {
		return nil, errors.Join(ErrDeleteUser, err)
	}
	s.logger.InfoContext(ctx, "user deleted", slog.Int64("user_id", user.ID), slog.String("email", email))

	notices := []Notice{{
		Setting: NoticeSettingRequests,
		Code:    CodeUserDeleted,
		Message: locale.T(ctx, "User %s was deleted from the site.", email),
		Type:    NoticeUpdated,
	}}

	s.mu.Lock()
	removed, err := s.removeRequest(ctx, email, RequestDelete)
	s.mu.Unlock()
	switch {
	case err != nil:
		s.logger.ErrorContext(ctx, "remove deletion request of deleted user",
			slog.String("email", email),
			slog.Any("error", err),
		)
		notices = append(notices, Notice{
			Setting: NoticeSettingRequests,
			Code:    CodeQueueNotUpdated,
			Message: locale.T(ctx, "The deletion request of %s could not be removed from the table.", email),
			Type:    NoticeWarning,
		})
	case !removed:
		s.logger.WarnContext(ctx, "deleted user had no queued deletion request", slog.String("email", email))
	}
	return notices, nil
}

// UserHasContent reports whether the user authored posts of a public type,
// has any comment (unapproved included) or is claimed by a HasContent
// filter. An unresolvable reference yields false.
func (s *Service) UserHasContent(ctx context.Context, ref UserRef) (bool, error) {
	var user User
	switch v := ref.(type) {
	case User:
		user = v
	case UserID:
		u, err := s.users.UserByID(ctx, int64(v))
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return false, nil
			}
			return false, errors.Join(ErrContentCheck, err)
		}
		user = u
	default:
		return false, nil
	}

	types, err := s.content.PublicPostTypes(ctx)
	if err != nil {
		return false, errors.Join(ErrContentCheck, err)
	}
	for _, pt := range types {
		n, err := s.content.CountUserPosts(ctx, user.ID, pt)
		if err != nil {
			return false, errors.Join(ErrContentCheck, err)
		}
		if n > 0 {
			return true, nil
		}
	}

	n, err := s.content.CountCommentsByEmail(ctx, user.Email, true)
	if err != nil {
		return false, errors.Join(ErrContentCheck, err)
	}
	if n > 0 {
		return true, nil
	}

	has, err := s.hooks.applyHasContent(ctx, user)
	if err != nil {
		return false, errors.Join(ErrContentCheck, err)
	}
	return has, nil
}

// SettingsTabs returns the settings page tabs after filters.
func (s *Service) SettingsTabs(ctx context.Context) []SettingsTab {
	return s.hooks.applyTabs(ctx, DefaultSettingsTabs())
}

// Settings loads the stored cookie banner options.
func (s *Service) Settings(ctx context.Context) (SettingsValues, error) {
	var (
		v   SettingsValues
		err error
	)
	if v.BannerContent, err = options.Get(ctx, s.store, OptionBannerContent, ""); err != nil {
		return v, errors.Join(ErrLoadSettings, err)
	}
	if v.PrivacyExcerpt, err = options.Get(ctx, s.store, OptionPrivacyExcerpt, ""); err != nil {
		return v, errors.Join(ErrLoadSettings, err)
	}
	if v.PopupContent, err = options.Get(ctx, s.store, OptionPopupContent, PopupContent{}); err != nil {
		return v, errors.Join(ErrLoadSettings, err)
	}
	return v, nil
}

// SaveSettings sanitizes and stores every option registered for group.
// submitted maps option keys to raw form values; an absent key stores the
// sanitized zero value. Dropped records produce a warning notice.
func (s *Service) SaveSettings(ctx context.Context, group string, submitted map[string]any) ([]Notice, error) {
	var notices []Notice
	for _, setting := range s.registry.Settings(group) {
		var dropped []string
		drop := func(path string) { dropped = append(dropped, path) }

		err := options.Set[any](ctx, s.store, setting.Key, submitted[setting.Key], func(v any) (any, error) {
			return setting.Sanitize(v, drop)
		})
		if err != nil {
			return nil, errors.Join(ErrSaveSettings, err)
		}
		if len(dropped) > 0 {
			s.logger.WarnContext(ctx, "dropped incomplete setting entries",
				slog.String("key", setting.Key),
				slog.Any("paths", dropped),
			)
			notices = append(notices, Notice{
				Setting: setting.Key,
				Code:    CodeDroppedEntries,
				Message: locale.T(ctx, "Dropped incomplete entries: %s.", strings.Join(dropped, ", ")),
				Type:    NoticeWarning,
			})
		}
	}

	s.logger.InfoContext(ctx, "settings saved", slog.String("group", group))
	notices = append(notices, Notice{
		Setting: NoticeSettingGeneral,
		Code:    CodeSettingsUpdated,
		Message: locale.T(ctx, "Settings saved."),
		Type:    NoticeUpdated,
	})
	return notices, nil
}

// removeRequest deletes the first entry matching (email, type). Callers
// hold s.mu.
func (s *Service) removeRequest(ctx context.Context, email string, t RequestType) (bool, error) {
	if email == "" {
		return false, nil
	}
	list, err := s.Requests(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(list, email, t)
	if i < 0 {
		return false, nil
	}
	list = append(list[:i:i], list[i+1:]...)
	if err := s.saveRequests(ctx, list); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) userNotFound(ctx context.Context) Notice {
	return Notice{
		Setting: NoticeSettingRequests,
		Code:    CodeInvalidUser,
		Message: locale.T(ctx, "User not found."),
		Type:    NoticeError,
	}
}

// indexOf finds the first request of type t for email. Addresses compare
// case-insensitively.
func indexOf(list []DataRequest, email string, t RequestType) int {
	for i, r := range list {
		if r.Type == t && strings.EqualFold(r.Email, email) {
			return i
		}
	}
	return -1
}

func displayEmail(raw, clean string) string {
	if clean != "" {
		return clean
	}
	return sanitizer.TextField(raw)
}
