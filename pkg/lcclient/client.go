// Package lcclient provides the main entry point for creating LendingClub API clients
package lcclient

import (
	"fmt"

	"github.com/fivetwenty-io/lendingclub/internal/client"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// New creates a full client with account and loan operations. The config
// must carry an API key and an investor ID.
func New(config *lendingclub.Config) (lendingclub.Client, error) {
	if config == nil {
		return nil, lendingclub.ErrConfigRequired
	}

	if config.InvestorID == "" {
		return nil, lendingclub.ErrInvestorIDRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewLoanClient creates a client that can only browse listed loans. The
// investor ID of config, if any, is ignored.
func NewLoanClient(config *lendingclub.Config) (lendingclub.LoanClient, error) {
	if config == nil {
		return nil, lendingclub.ErrConfigRequired
	}

	loanConfig := *config
	loanConfig.InvestorID = ""

	c, err := client.New(&loanConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return &loanOnly{loans: c.Loans()}, nil
}

// NewWithAPIKey creates a full client against the default endpoint.
func NewWithAPIKey(apiKey, investorID string) (lendingclub.Client, error) {
	return New(&lendingclub.Config{
		APIKey:     apiKey,
		InvestorID: investorID,
	})
}

// loanOnly hides the account operations of the underlying client so a
// loan-only client cannot be asserted back into a lendingclub.Client.
type loanOnly struct {
	loans lendingclub.LoansClient
}

func (l *loanOnly) Loans() lendingclub.LoansClient {
	return l.loans
}
