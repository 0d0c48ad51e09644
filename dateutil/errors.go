package dateutil

import "errors"

var (
	ErrInvalidDate   = errors.New("Invalid date provided")
	ErrInvalidAmount = errors.New("Invalid amount provided")
	ErrInvalidRange  = errors.New("Invalid range: from date must be before to date")
	ErrInvalidUnit   = errors.New("Invalid unit provided")
)
