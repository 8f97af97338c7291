package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrRegionNotFound       = errors.New("region not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrCalculationNotFound  = errors.New("calculation not found")

	ErrDuplicateRegionName       = errors.New("region with this name already exists")
	ErrDuplicateOrganizationName = errors.New("organization with this name already exists")
	ErrDuplicateEmployeeName     = errors.New("employee with this first and last name already exists")
	ErrDuplicatePinfl            = errors.New("employee with this pinfl already exists")

	ErrSelfReference   = errors.New("organization cannot be its own parent")
	ErrCyclicReference = errors.New("moving organization would create a cycle")

	ErrNonPositiveAmount = errors.New("calculation amount must be positive")
	ErrEmployeeRequired  = errors.New("calculation must reference an existing employee")
)
