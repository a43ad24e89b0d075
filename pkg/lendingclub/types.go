package lendingclub

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransferFrequency is how often an add-funds transfer repeats.
type TransferFrequency string

// Transfer frequencies accepted by the funds resource.
const (
	TransferNow         TransferFrequency = "LOAD_NOW"
	TransferOnce        TransferFrequency = "LOAD_ONCE"
	TransferWeekly      TransferFrequency = "LOAD_WEEKLY"
	TransferBiweekly    TransferFrequency = "LOAD_BIWEEKLY"
	TransferSemiMonthly TransferFrequency = "LOAD_ON_DAY_1_AND_16"
	TransferMonthly     TransferFrequency = "LOAD_MONTHLY"
)

var transferFrequencyAliases = map[string]TransferFrequency{
	"now":         TransferNow,
	"once":        TransferOnce,
	"weekly":      TransferWeekly,
	"biweekly":    TransferBiweekly,
	"semimonthly": TransferSemiMonthly,
	"monthly":     TransferMonthly,
}

// TransferFrequencies lists every valid frequency.
func TransferFrequencies() []TransferFrequency {
	return []TransferFrequency{
		TransferNow,
		TransferOnce,
		TransferWeekly,
		TransferBiweekly,
		TransferSemiMonthly,
		TransferMonthly,
	}
}

// Valid reports whether f is one of the frequencies the API accepts.
func (f TransferFrequency) Valid() bool {
	for _, known := range TransferFrequencies() {
		if f == known {
			return true
		}
	}

	return false
}

// ParseTransferFrequency accepts a wire name such as "LOAD_WEEKLY" or a
// short alias such as "weekly".
func ParseTransferFrequency(value string) (TransferFrequency, error) {
	frequency := TransferFrequency(strings.ToUpper(value))
	if frequency.Valid() {
		return frequency, nil
	}

	if alias, ok := transferFrequencyAliases[strings.ToLower(value)]; ok {
		return alias, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTransferFrequency, value)
}

// AddFundsRequest describes a deposit into the investor account.
type AddFundsRequest struct {
	Amount            decimal.Decimal
	TransferFrequency TransferFrequency
	// StartDate is the first transfer date of a recurring transfer, or the
	// transfer date of a one time transfer.
	StartDate *time.Time
	// EndDate is the last transfer date of a recurring transfer.
	EndDate *time.Time
}

// DetailedNotesOptions are the optional parameters of the detailed notes resource.
type DetailedNotesOptions struct {
	// Version is sent as X-LC-DETAILED-NOTES-VERSION when set.
	Version string
}

// ListedLoansOptions are the optional parameters of the loan listing resource.
type ListedLoansOptions struct {
	// FilterID restricts the listing to a saved filter. See AccountClient.Filters.
	FilterID *int64
	// ShowAll returns every listed loan instead of the most recent listing period.
	ShowAll *bool
	// Version is sent as X-LC-LISTING-VERSION when set.
	Version string
}

// ListedLoans is the result of the loan listing resource.
type ListedLoans struct {
	AsOfDate string   `json:"asOfDate" yaml:"asOfDate"`
	Loans    []Record `json:"loans"    yaml:"loans"`
}

// Order is a request to invest in one loan. Orders are values: WithPortfolio
// returns a modified copy and the original is never changed.
type Order struct {
	loanID          int64
	requestedAmount decimal.Decimal
	portfolioID     *int64
}

// NewOrder creates an order for requestedAmount dollars of loanID.
func NewOrder(loanID int64, requestedAmount decimal.Decimal) Order {
	return Order{
		loanID:          loanID,
		requestedAmount: requestedAmount,
	}
}

// WithPortfolio returns a copy of the order that assigns the note to portfolioID.
func (o Order) WithPortfolio(portfolioID int64) Order {
	id := portfolioID
	o.portfolioID = &id

	return o
}

// LoanID returns the loan being invested in.
func (o Order) LoanID() int64 {
	return o.loanID
}

// RequestedAmount returns the amount to invest.
func (o Order) RequestedAmount() decimal.Decimal {
	return o.requestedAmount
}

// PortfolioID returns the target portfolio, if one was set.
func (o Order) PortfolioID() (int64, bool) {
	if o.portfolioID == nil {
		return 0, false
	}

	return *o.portfolioID, true
}

// MarshalJSON encodes the order in the shape the orders resource expects.
func (o Order) MarshalJSON() ([]byte, error) {
	wire := struct {
		LoanID          int64       `json:"loanId"`
		RequestedAmount json.Number `json:"requestedAmount"`
		PortfolioID     *int64      `json:"portfolioId"`
	}{
		LoanID:          o.loanID,
		RequestedAmount: json.Number(o.requestedAmount.String()),
		PortfolioID:     o.portfolioID,
	}

	return json.Marshal(wire)
}
