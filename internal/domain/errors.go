package domain

import "errors"

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrTwoFactorRequired = errors.New("two-factor code required")
)
