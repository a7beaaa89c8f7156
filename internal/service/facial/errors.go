package facial

import "errors"

var (
	ErrGuideNotFound     = errors.New("guide not found")
	ErrNotOwner          = errors.New("guide belongs to another patient")
	ErrGuideCompleted    = errors.New("guide has no remaining credits")
	ErrGuideExpired      = errors.New("guide is expired")
	ErrGuidePastDue      = errors.New("guide is past its expiration date")
	ErrNoEligibleGuide   = errors.New("no active guide with available credits")
)
