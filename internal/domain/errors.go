package domain

import "errors"

var (
	ErrBlankPixKey       = errors.New("pix key must not be blank")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
)
