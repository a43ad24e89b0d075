package client

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/fivetwenty-io/lendingclub/internal/http"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// Business error messages for rejected writes.
const (
	addFundsFailed        = "Failed to add funds."
	withdrawFundsFailed   = "Failed to withdraw funds."
	cancelTransfersFailed = "Failed to cancel transfers."
	createPortfolioFailed = "Failed to create portfolio."
	submitOrderFailed     = "Failed to submit order."
)

// AccountClient implements lendingclub.AccountClient.
type AccountClient struct {
	httpClient *http.Client
	endpoint   string
	investorID string
}

// NewAccountClient creates a new account client. The investor ID must
// already be a valid URL path component.
func NewAccountClient(httpClient *http.Client, endpoint, investorID string) *AccountClient {
	return &AccountClient{
		httpClient: httpClient,
		endpoint:   endpoint,
		investorID: investorID,
	}
}

// Summary implements lendingclub.AccountClient.Summary.
func (c *AccountClient) Summary(ctx context.Context) (lendingclub.Record, error) {
	resp, err := c.get(ctx, nil, "summary")
	if err != nil {
		return lendingclub.Record{}, fmt.Errorf("getting account summary: %w", err)
	}

	summary, err := parseObject(resp.Body)
	if err != nil {
		return lendingclub.Record{}, fmt.Errorf("getting account summary: %w", err)
	}

	return summary, nil
}

// AvailableCash implements lendingclub.AccountClient.AvailableCash.
func (c *AccountClient) AvailableCash(ctx context.Context) (decimal.Decimal, error) {
	resp, err := c.get(ctx, nil, "availablecash")
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting available cash: %w", err)
	}

	record, err := parseObject(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting available cash: %w", err)
	}

	cash, err := record.Decimal("availableCash")
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting available cash: %w", err)
	}

	return cash, nil
}

// AddFunds implements lendingclub.AccountClient.AddFunds.
func (c *AccountClient) AddFunds(ctx context.Context, request *lendingclub.AddFundsRequest) (lendingclub.Record, error) {
	if request == nil {
		request = &lendingclub.AddFundsRequest{}
	}

	if !request.TransferFrequency.Valid() {
		return lendingclub.Record{}, fmt.Errorf("adding funds: %w: %q", lendingclub.ErrInvalidTransferFrequency, request.TransferFrequency)
	}

	if !request.Amount.IsPositive() {
		return lendingclub.Record{}, fmt.Errorf("adding funds: %w", lendingclub.ErrInvalidAmount)
	}

	body := map[string]interface{}{
		"transferFrequency": request.TransferFrequency,
		"amount":            jsonAmount(request.Amount),
		"startDate":         transferDate(request.StartDate),
		"endDate":           transferDate(request.EndDate),
	}

	resp, err := c.post(ctx, body, addFundsFailed, "funds", "add")
	if err != nil {
		return lendingclub.Record{}, fmt.Errorf("adding funds: %w", err)
	}

	transfer, err := parseObject(resp.Body)
	if err != nil {
		return lendingclub.Record{}, fmt.Errorf("adding funds: %w", err)
	}

	return transfer, nil
}

// WithdrawFunds implements lendingclub.AccountClient.WithdrawFunds.
func (c *AccountClient) WithdrawFunds(ctx context.Context, amount decimal.Decimal) (lendingclub.Record, error) {
	if !amount.IsPositive() {
		return lendingclub.Record{}, fmt.Errorf("withdrawing funds: %w", lendingclub.ErrInvalidAmount)
	}

	body := map[string]interface{}{
		"amount": jsonAmount(amount),
	}

	resp, err := c.post(ctx, body, withdrawFundsFailed, "funds", "withdraw")
	if err != nil {
		return lendingclub.Record{}, fmt.Errorf("withdrawing funds: %w", err)
	}

	transfer, err := parseObject(resp.Body)
	if err != nil {
		return lendingclub.Record{}, fmt.Errorf("withdrawing funds: %w", err)
	}

	return transfer, nil
}

// PendingTransfers implements lendingclub.AccountClient.PendingTransfers.
// An account without pending transfers yields an empty, non-nil slice.
func (c *AccountClient) PendingTransfers(ctx context.Context) ([]lendingclub.Record, error) {
	resp, err := c.get(ctx, nil, "funds", "pending")
	if err != nil {
		return nil, fmt.Errorf("listing pending transfers: %w", err)
	}

	transfers, err := parseOptionalCollection(resp.Body, "transfers")
	if err != nil {
		return nil, fmt.Errorf("listing pending transfers: %w", err)
	}

	return transfers, nil
}

// CancelTransfers implements lendingclub.AccountClient.CancelTransfers.
func (c *AccountClient) CancelTransfers(ctx context.Context, transferIDs []int64) ([]lendingclub.Record, error) {
	if len(transferIDs) == 0 {
		return nil, fmt.Errorf("cancelling transfers: %w", lendingclub.ErrNoTransferIDs)
	}

	body := map[string]interface{}{
		"transferId": transferIDs,
	}

	resp, err := c.post(ctx, body, cancelTransfersFailed, "funds", "cancel")
	if err != nil {
		return nil, fmt.Errorf("cancelling transfers: %w", err)
	}

	results, err := parseCollection(resp.Body, "cancellationResults")
	if err != nil {
		return nil, fmt.Errorf("cancelling transfers: %w", err)
	}

	return results, nil
}

// NotesOwned implements lendingclub.AccountClient.NotesOwned.
func (c *AccountClient) NotesOwned(ctx context.Context) ([]lendingclub.Record, error) {
	resp, err := c.get(ctx, nil, "notes")
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	notes, err := parseCollection(resp.Body, "myNotes")
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	return notes, nil
}

// DetailedNotesOwned implements lendingclub.AccountClient.DetailedNotesOwned.
func (c *AccountClient) DetailedNotesOwned(ctx context.Context, options *lendingclub.DetailedNotesOptions) ([]lendingclub.Record, error) {
	var headers map[string]string
	if options != nil && options.Version != "" {
		headers = map[string]string{constants.HeaderDetailedNotesVersion: options.Version}
	}

	resp, err := c.get(ctx, headers, "detailednotes")
	if err != nil {
		return nil, fmt.Errorf("listing detailed notes: %w", err)
	}

	notes, err := parseCollection(resp.Body, "myNotes")
	if err != nil {
		return nil, fmt.Errorf("listing detailed notes: %w", err)
	}

	return notes, nil
}

// PortfoliosOwned implements lendingclub.AccountClient.PortfoliosOwned.
func (c *AccountClient) PortfoliosOwned(ctx context.Context) ([]lendingclub.Record, error) {
	resp, err := c.get(ctx, nil, "portfolios")
	if err != nil {
		return nil, fmt.Errorf("listing portfolios: %w", err)
	}

	portfolios, err := parseCollection(resp.Body, "myPortfolios")
	if err != nil {
		return nil, fmt.Errorf("listing portfolios: %w", err)
	}

	return portfolios, nil
}

// CreatePortfolio implements lendingclub.AccountClient.CreatePortfolio.
// An empty description is sent as null.
func (c *AccountClient) CreatePortfolio(ctx context.Context, name, description string) (lendingclub.Record, error) {
	if name == "" {
		return lendingclub.Record{}, fmt.Errorf("creating portfolio: %w", lendingclub.ErrPortfolioNameRequired)
	}

	var portfolioDescription interface{}
	if description != "" {
		portfolioDescription = description
	}

	body := map[string]interface{}{
		"actorId":              jsonInvestorID(c.investorID),
		"portfolioName":        name,
		"portfolioDescription": portfolioDescription,
	}

	resp, err := c.post(ctx, body, createPortfolioFailed, "portfolios")
	if err != nil {
		return lendingclub.Record{}, fmt.Errorf("creating portfolio: %w", err)
	}

	portfolio, err := parseObject(resp.Body)
	if err != nil {
		return lendingclub.Record{}, fmt.Errorf("creating portfolio: %w", err)
	}

	return portfolio, nil
}

// SubmitOrder implements lendingclub.AccountClient.SubmitOrder.
func (c *AccountClient) SubmitOrder(ctx context.Context, orders []lendingclub.Order) ([]lendingclub.Record, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("submitting order: %w", lendingclub.ErrNoOrders)
	}

	for _, order := range orders {
		if !order.RequestedAmount().IsPositive() {
			return nil, fmt.Errorf("submitting order: loan %d: %w", order.LoanID(), lendingclub.ErrInvalidAmount)
		}
	}

	body := map[string]interface{}{
		"aid":    jsonInvestorID(c.investorID),
		"orders": orders,
	}

	resp, err := c.post(ctx, body, submitOrderFailed, "orders")
	if err != nil {
		return nil, fmt.Errorf("submitting order: %w", err)
	}

	confirmations, err := parseCollection(resp.Body, "orderConfirmations")
	if err != nil {
		return nil, fmt.Errorf("submitting order: %w", err)
	}

	return confirmations, nil
}

// Filters implements lendingclub.AccountClient.Filters.
func (c *AccountClient) Filters(ctx context.Context) ([]lendingclub.Record, error) {
	resp, err := c.get(ctx, nil, "filters")
	if err != nil {
		return nil, fmt.Errorf("listing filters: %w", err)
	}

	filters, err := parseArray(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing filters: %w", err)
	}

	return filters, nil
}

func (c *AccountClient) url(path ...interface{}) (string, error) {
	components := append([]interface{}{"accounts", c.investorID}, path...)

	return lendingclub.BuildURL(c.endpoint, components...)
}

func (c *AccountClient) get(ctx context.Context, headers map[string]string, path ...interface{}) (*http.Response, error) {
	rawURL, err := c.url(path...)
	if err != nil {
		return nil, err
	}

	return c.httpClient.Get(ctx, rawURL, nil, headers)
}

func (c *AccountClient) post(ctx context.Context, body interface{}, failure string, path ...interface{}) (*http.Response, error) {
	rawURL, err := c.url(path...)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, rawURL, body)
	if err != nil {
		return nil, businessError(resp, err, failure)
	}

	return resp, nil
}

func transferDate(date *time.Time) interface{} {
	if date == nil {
		return nil
	}

	return date.Format(constants.TransferDateLayout)
}
