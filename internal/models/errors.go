package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrAmountNegative   = errors.New("the amount must not be negative")
	ErrInvalidType      = errors.New("the specified transaction type is invalid")
	ErrInvalidMode      = errors.New("the specified payment mode is invalid")
	ErrInvalidRole      = errors.New("the specified member role is invalid")
	ErrYearExists       = errors.New("this fiscal year already exists")
	ErrYearEmpty        = errors.New("the fiscal year must not be empty")
	ErrPasswordEmpty    = errors.New("the password must not be empty")
	ErrTextEmpty        = errors.New("the rule text must not be empty")
	ErrNameEmpty        = errors.New("the name must not be empty")
)
