package handler

const (
	errInternalServer     = "Internal server error"
	errInvalidCredentials = "Invalid credentials"
	errSessionNotFound    = "WhatsApp session not found"
)
