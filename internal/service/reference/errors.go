package reference

import "errors"

var (
	ErrReferenceNotFound    = errors.New("reference not found")
	ErrNotOwner             = errors.New("reference belongs to another patient")
	ErrNameRequired         = errors.New("reference name is required")
	ErrPsychologistNotFound = errors.New("psychologist not found")
	ErrNotLinked            = errors.New("an accepted link with the psychologist is required")
	ErrAlreadyBound         = errors.New("reference is already bound to a different psychologist")
	ErrPsychologistTaken    = errors.New("another reference is already bound to this psychologist")
)
