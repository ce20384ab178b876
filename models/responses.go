package models

// MessageResponse is the JSON body used for every human-readable outcome:
// successful signup, validation failures, duplicate email, invalid
// credentials, the welcome greeting, and opaque server errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the JSON body returned by a successful login.
// Token holds the compact JWS serialization of the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// StatusResponse is the JSON body returned by the root health endpoint.
type StatusResponse struct {
	Status string `json:"status"`
}
