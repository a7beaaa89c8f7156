package guide

import "errors"

var (
	ErrGuideNotFound    = errors.New("guide not found")
	ErrNumberRequired   = errors.New("guide number is required")
	ErrNotOwner         = errors.New("guide belongs to another patient")
	ErrDuplicateNumber  = errors.New("a guide with this number already exists")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrInvalidCredits   = errors.New("total credits must be positive")
	ErrGuideNotActive   = errors.New("guide is not active")
	ErrGuideHasFacials  = errors.New("guide has facial records and cannot be deleted")
	ErrTerminalStatus   = errors.New("completed and expired guides cannot be changed")
	ErrInvalidStatus    = errors.New("status can only be set to expired")
)
