package session

import "errors"

var (
	ErrInvalidDuration      = errors.New("duration must be 30 or 50 minutes")
	ErrCounterpartyRequired = errors.New("exactly one of psychologist_id or reference_id is required")
	ErrPatientRequired      = errors.New("patient_id is required")
	ErrPsychologistNotFound = errors.New("psychologist not found")
	ErrReferenceNotFound    = errors.New("reference not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrNotLinked            = errors.New("an accepted link is required")
	ErrReferenceNotOwned    = errors.New("reference belongs to another patient")
)
