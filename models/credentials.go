package models

// Credentials is the email/password pair supplied by a client during signup
// and login. The password travels in plaintext only inside the request body;
// it is never persisted or logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
