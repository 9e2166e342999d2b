package domain

import "errors"

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrPathNotFound       = errors.New("path not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNoPendingDelete    = errors.New("no pending delete")
	ErrUsernameNotSet     = errors.New("username not set")
)
