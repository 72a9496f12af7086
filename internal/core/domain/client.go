package domain

// Client represents a registered bank customer who may own any number of deposits.
// Beyond decode-time arity checks, construction performs no validation; the
// services enforce the non-empty-name rule on create and rename.
type Client struct {
	ClientID string `json:"clientID"` // Primary key (e.g. "C1234")
	FullName string `json:"fullName"`
}
