package models

// Identity is the authenticated caller resolved from a verified session
// token. Handlers read it from the request context, never from the body.
type Identity struct {
	UserID int64
	Email  string
}
