package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrAlreadyRegistered = errors.New("employee is already registered")
	ErrNotRegistered     = errors.New("employee is not registered")
	ErrNotApproved       = errors.New("employee is not approved to clock in or out")
)
