package gdpr

import "errors"

var (
	ErrUserNotFound     = errors.New("gdpr: user not found")
	ErrInvalidEmail     = errors.New("gdpr: invalid email address")
	ErrDuplicateRequest = errors.New("gdpr: deletion request already exists")
	ErrRequestNotFound  = errors.New("gdpr: deletion request not found")
	ErrInvalidUserRef   = errors.New("gdpr: invalid user reference")
	ErrDeleteAborted    = errors.New("gdpr: user deletion aborted")

	ErrLoadRequests = errors.New("gdpr: failed to load requests")
	ErrSaveRequests = errors.New("gdpr: failed to save requests")
	ErrLoadSettings = errors.New("gdpr: failed to load settings")
	ErrSaveSettings = errors.New("gdpr: failed to save settings")
	ErrDeleteUser   = errors.New("gdpr: failed to delete user")
	ErrContentCheck = errors.New("gdpr: failed to check user content")

	ErrEmptyKey         = errors.New("gdpr: setting key is empty")
	ErrDuplicateSetting = errors.New("gdpr: setting already registered")
	ErrNilSanitizer     = errors.New("gdpr: sanitize callback is nil")
	ErrDuplicateSection = errors.New("gdpr: section already registered")
	ErrUnknownSection   = errors.New("gdpr: unknown settings section")
	ErrMissingLabelFor  = errors.New("gdpr: all settings fields must have the label_for argument")
)

// IsRecoverable reports whether err is a business outcome that should be
// shown to the operator as a notice rather than failing the request.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrDuplicateRequest) ||
		errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrInvalidUserRef) ||
		errors.Is(err, ErrDeleteAborted)
}
