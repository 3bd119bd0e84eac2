package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrUnknownCategory = goerr.New("unknown request category")
	ErrUserNotFound    = goerr.New("user not found in catalog")
	ErrClientNotFound  = goerr.New("client not found in catalog")
	ErrInvalidRecord   = goerr.New("invalid request record")
)
