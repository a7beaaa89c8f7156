package company

import "errors"

var (
	ErrNameRequired     = errors.New("company name is required")
	ErrDuplicateCompany = errors.New("a company with this name already exists")
	ErrCompanyNotFound  = errors.New("company not found")
)
