package auth

import "errors"

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidWhatsapp    = errors.New("invalid whatsapp number")
	ErrInvalidRole        = errors.New("role must be patient or psychologist")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailAlreadyExists = errors.New("an account with this email already exists")
	ErrWhatsappExists     = errors.New("an account with this whatsapp number already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("whatsapp number not verified")
	ErrOTPExpired         = errors.New("verification code expired")
	ErrOTPInvalid         = errors.New("verification code is incorrect")
	ErrOTPMaxAttempts     = errors.New("too many verification attempts")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionNotFound    = errors.New("session not found")
)
