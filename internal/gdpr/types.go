package gdpr

import (
	"sort"
	"time"
)

// RequestType is the kind of a data-subject request.
type RequestType string

const (
	RequestAccess      RequestType = "access"
	RequestRectify     RequestType = "rectify"
	RequestPortability RequestType = "portability"
	RequestComplaint   RequestType = "complaint"
	RequestDelete      RequestType = "delete"
)

// RequestTypes lists every request type in tab order.
var RequestTypes = []RequestType{
	RequestAccess,
	RequestRectify,
	RequestPortability,
	RequestComplaint,
	RequestDelete,
}

var requestLabels = map[RequestType]string{
	RequestAccess:      "Access Data",
	RequestRectify:     "Rectify Data",
	RequestPortability: "Data Portability",
	RequestComplaint:   "Complaint",
	RequestDelete:      "Erasure",
}

// Label returns the tab title of t.
func (t RequestType) Label() string {
	return requestLabels[t]
}

// Valid reports whether t is one of RequestTypes.
func (t RequestType) Valid() bool {
	_, ok := requestLabels[t]
	return ok
}

// HasData reports whether requests of type t carry a free-text payload.
func (t RequestType) HasData() bool {
	return t == RequestRectify || t == RequestComplaint
}

// DateLayout formats DataRequest.Date, e.g. "March 4, 2026".
const DateLayout = "January 2, 2006"

// DataRequest is one entry of the persisted requests list.
type DataRequest struct {
	Email string      `json:"email"`
	Date  string      `json:"date"`
	Type  RequestType `json:"type"`
	Data  string      `json:"data,omitempty"`
}

// NewDeletionRequest builds a delete request dated at now.
func NewDeletionRequest(email string, now time.Time) DataRequest {
	return DataRequest{
		Email: email,
		Date:  now.Format(DateLayout),
		Type:  RequestDelete,
	}
}

// CookieHost is a third-party host setting cookies for a category.
type CookieHost struct {
	Name        string `json:"name"`
	CookiesUsed string `json:"cookies_used"`
	OptOut      string `json:"optout"`
}

// CookieCategory is one tab of the cookie preferences popup.
type CookieCategory struct {
	Name string `json:"name"`
	// AlwaysActive is "on" when the category cannot be declined.
	AlwaysActive string                `json:"always_active"`
	HowWeUse     string                `json:"how_we_use"`
	CookiesUsed  string                `json:"cookies_used"`
	Hosts        map[string]CookieHost `json:"hosts,omitempty"`
}

// IsAlwaysActive reports whether the toggle is set.
func (c CookieCategory) IsAlwaysActive() bool {
	return c.AlwaysActive == "on"
}

// HostKeys returns host keys in sorted order.
func (c CookieCategory) HostKeys() []string {
	return sortedKeys(c.Hosts)
}

// PopupContent maps category keys to categories.
type PopupContent map[string]CookieCategory

// Keys returns category keys in sorted order.
func (p PopupContent) Keys() []string {
	return sortedKeys(p)
}

// User is a site account.
type User struct {
	ID          int64
	Email       string
	Login       string
	DisplayName string
}

func (User) userRef() {}

// UserID references a user by numeric id.
type UserID int64

func (UserID) userRef() {}

// UserRef is either a User or a UserID.
type UserRef interface {
	userRef()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
