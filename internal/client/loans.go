package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/fivetwenty-io/lendingclub/internal/http"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// LoansClient implements lendingclub.LoansClient.
type LoansClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewLoansClient creates a new loans client.
func NewLoansClient(httpClient *http.Client, endpoint string) *LoansClient {
	return &LoansClient{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}

// ListedLoans implements lendingclub.LoansClient.ListedLoans.
func (c *LoansClient) ListedLoans(ctx context.Context, options *lendingclub.ListedLoansOptions) (*lendingclub.ListedLoans, error) {
	rawURL, err := lendingclub.BuildURL(c.endpoint, "loans", "listing")
	if err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}

	query := url.Values{}

	var headers map[string]string

	if options != nil {
		if options.FilterID != nil {
			query.Set("filterId", strconv.FormatInt(*options.FilterID, 10))
		}

		if options.ShowAll != nil {
			query.Set("showAll", strconv.FormatBool(*options.ShowAll))
		}

		if options.Version != "" {
			headers = map[string]string{constants.HeaderListingVersion: options.Version}
		}
	}

	resp, err := c.httpClient.Get(ctx, rawURL, query, headers)
	if err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}

	record, err := parseObject(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing loans: %w", err)
	}

	loans, err := record.Records("loans")
	if err != nil {
		return nil, fmt.Errorf("listing loans: parsing response: %w", err)
	}

	listed := &lendingclub.ListedLoans{Loans: loans}

	if record.Has("asOfDate") && !record.IsNull("asOfDate") {
		listed.AsOfDate, err = record.String("asOfDate")
		if err != nil {
			return nil, fmt.Errorf("listing loans: parsing response: %w", err)
		}
	}

	return listed, nil
}
