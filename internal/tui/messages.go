package tui

import "github.com/MKhiriev/go-cred-keeper/models"

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// SignupSuccessNotice is shown on the menu after a successful signup.
type SignupSuccessNotice struct {
	Message string
	Email   string
}

type signupResultMsg struct {
	message string
	email   string
	err     error
}

type loginResultMsg struct {
	token string
	err   error
}

type verifyResultMsg struct {
	claims models.Claims
	err    error
}

type serverInfoMsg struct {
	info models.AppBuildInfo
	err  error
}

type copiedMsg struct {
	err error
}
