package quote

import "errors"

var (
	ErrQuoteNotFound = errors.New("quote not found")
	ErrInvalidStatus = errors.New("invalid status")
)
