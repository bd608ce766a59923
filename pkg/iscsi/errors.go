package iscsi

import "github.com/pkg/errors"

var (
	ErrNameTooLong    = errors.New("name longer than the field allows")
	ErrSecretTooLong  = errors.New("chap secret longer than 16 bytes")
	ErrSecretTooShort = errors.New("chap secret shorter than 12 bytes")
)
