package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured     = errors.New("no API key configured, use 'lc login' or set LC_API_KEY")
	ErrNoInvestorIDConfigured = errors.New("no investor ID configured, use 'lc login --investor-id' or set LC_INVESTOR_ID")
	ErrUnknownConfigKey       = errors.New("unknown configuration key")
	ErrInvalidOutputFormat    = errors.New("invalid output format, expected table, json or yaml")
)

// Argument errors.
var (
	ErrInvalidTransferID = errors.New("invalid transfer ID")
	ErrInvalidOrderSpec  = errors.New("invalid order, expected LOAN_ID:AMOUNT[:PORTFOLIO_ID]")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
)

// Messaging errors.
var (
	ErrNATSSubjectRequired = errors.New("NATS subject is required")
)
