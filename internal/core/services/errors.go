package services

import "errors"

// Lookup errors
var (
	ErrTaskNotFound       = errors.New("task: not found")
	ErrBidNotFound        = errors.New("bid: not found")
	ErrReputationNotFound = errors.New("reputation: not found")
	ErrAgentNotFound      = errors.New("agent: not found")
	ErrAccountNotFound    = errors.New("account: not found")
)

// Identity errors
var (
	ErrInvalidCredentials = errors.New("agent: invalid credentials")
)
