package models

// Session is the authenticated actor of a request together with the
// identifier of the access token it presented.
type Session struct {
	User    *User
	TokenID string
}
