package lendingclub

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// AccountClient provides the investor account resources. Every operation is
// scoped to the investor ID the client was constructed with.
type AccountClient interface {
	Summary(ctx context.Context) (Record, error)
	AvailableCash(ctx context.Context) (decimal.Decimal, error)
	AddFunds(ctx context.Context, request *AddFundsRequest) (Record, error)
	WithdrawFunds(ctx context.Context, amount decimal.Decimal) (Record, error)
	PendingTransfers(ctx context.Context) ([]Record, error)
	CancelTransfers(ctx context.Context, transferIDs []int64) ([]Record, error)
	NotesOwned(ctx context.Context) ([]Record, error)
	DetailedNotesOwned(ctx context.Context, options *DetailedNotesOptions) ([]Record, error)
	PortfoliosOwned(ctx context.Context) ([]Record, error)
	CreatePortfolio(ctx context.Context, name, description string) (Record, error)
	SubmitOrder(ctx context.Context, orders []Order) ([]Record, error)
	Filters(ctx context.Context) ([]Record, error)
}

// LoansClient provides the loan resources, which need no investor ID.
type LoansClient interface {
	ListedLoans(ctx context.Context, options *ListedLoansOptions) (*ListedLoans, error)
}

// LoanClient is a client built without an investor ID. It can only browse loans.
type LoanClient interface {
	Loans() LoansClient
}

// Client is a client built with an investor ID.
type Client interface {
	LoanClient

	Account() AccountClient
	InvestorID() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client or LoanClient.
//
// The client issues exactly one request per operation and never retries.
// Timeouts are controlled by the context passed to each operation, or by
// HTTPTimeout / HTTPClient for a client-wide limit.
type Config struct {
	// APIKey is sent verbatim in the Authorization header of every request.
	APIKey string
	// InvestorID is the account number shown in the account summary on the
	// LendingClub website. Required for account operations.
	InvestorID string
	// Endpoint overrides DefaultEndpoint. A trailing slash is trimmed and
	// "https://" is added when no scheme is present.
	Endpoint string

	// HTTPTimeout is the client-wide request timeout. Zero means no limit
	// beyond the context.
	HTTPTimeout time.Duration
	// HTTPClient replaces the underlying HTTP client, e.g. to configure TLS
	// or proxies.
	HTTPClient *http.Client
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}
