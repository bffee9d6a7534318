package models

// MessageResponse carries a human-readable confirmation, e.g. after signup.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the signed bearer token issued on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the body of every rejected request. Err holds the
// human-readable reason shown to the user.
type ErrorResponse struct {
	Err string `json:"err"`
}
