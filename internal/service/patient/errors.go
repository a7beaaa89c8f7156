package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrGuideNotFound   = errors.New("guide not found")
	ErrNotLinked       = errors.New("no accepted link with this patient")
	ErrInvalidContact  = errors.New("a valid email or whatsapp number is required")
)
