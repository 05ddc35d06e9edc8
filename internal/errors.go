package internal

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrNoRecords = errors.New("no records")

	ErrMonthOutOfRange = errors.New("month out of range")
	ErrYearOutOfRange  = errors.New("year out of range")
)
