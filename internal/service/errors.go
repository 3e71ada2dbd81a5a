package service

import "errors"

var (
	ErrNoProfiles = errors.New("no persisted profiles found")
	ErrNoRFPs     = errors.New("no persisted rfps found")
)
