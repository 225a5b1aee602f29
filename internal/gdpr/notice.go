package gdpr

// NoticeType is the severity of a Notice.
type NoticeType string

const (
	NoticeError   NoticeType = "error"
	NoticeUpdated NoticeType = "updated"
	NoticeWarning NoticeType = "warning"
)

// Notice setting slugs and codes.
const (
	NoticeSettingRequests = "gdpr-requests"
	NoticeSettingGeneral  = "general"

	CodeInvalidUser     = "invalid-user"
	CodeDuplicate       = "duplicate-request"
	CodeNewRequest      = "new-request"
	CodeRemoveRequest   = "remove-request"
	CodeRequestNotFound = "request-not-found"
	CodeUserDeleted     = "user-deleted"
	CodeDeleteFailed    = "delete-failed"
	CodeQueueNotUpdated = "queue-not-updated"
	CodeSettingsUpdated = "settings_updated"
	CodeDroppedEntries  = "dropped-entries"
)

// Notice is a one-shot status message shown on the next page load.
type Notice struct {
	Setting string     `json:"setting"`
	Code    string     `json:"code"`
	Message string     `json:"message"`
	Type    NoticeType `json:"type"`
}

// IsError reports whether the notice is an error.
func (n Notice) IsError() bool {
	return n.Type == NoticeError
}
