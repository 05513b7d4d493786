package lead

import "errors"

var (
	ErrLeadNotFound    = errors.New("lead not found")
	ErrMissingContact  = errors.New("name, email, and phone are required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidDateSpan = errors.New("invalid date filter")
)
