package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	internalhttp "github.com/fivetwenty-io/lendingclub/internal/http"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// parseObject decodes a response body holding a single JSON object.
func parseObject(body []byte) (lendingclub.Record, error) {
	record, err := lendingclub.ParseRecord(body)
	if err != nil {
		return lendingclub.Record{}, fmt.Errorf("parsing response: %w", err)
	}

	return record, nil
}

// parseCollection decodes the named array of objects inside a JSON object.
// The key must be present.
func parseCollection(body []byte, key string) ([]lendingclub.Record, error) {
	record, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	records, err := record.Records(key)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return records, nil
}

// parseOptionalCollection is parseCollection for keys the API leaves out
// when the collection is empty.
func parseOptionalCollection(body []byte, key string) ([]lendingclub.Record, error) {
	record, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	if !record.Has(key) || record.IsNull(key) {
		return []lendingclub.Record{}, nil
	}

	records, err := record.Records(key)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return records, nil
}

// parseArray decodes a response body holding a top-level array of objects.
func parseArray(body []byte) ([]lendingclub.Record, error) {
	records, err := lendingclub.ParseRecords(body)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return records, nil
}

// businessError turns a rejected write into a *lendingclub.BusinessError
// when the 400 body carries an "errors" list, even an empty one. Any other
// failure is returned unchanged.
func businessError(resp *internalhttp.Response, err error, message string) error {
	if resp == nil || resp.StatusCode != http.StatusBadRequest {
		return err
	}

	var body struct {
		Errors *[]lendingclub.APIError `json:"errors"`
	}

	if json.Unmarshal(resp.Body, &body) != nil || body.Errors == nil {
		return err
	}

	return &lendingclub.BusinessError{
		Message: message,
		Errors:  *body.Errors,
	}
}

// jsonAmount encodes a decimal as a JSON number without going through float64.
func jsonAmount(amount decimal.Decimal) json.Number {
	return json.Number(amount.String())
}

// jsonInvestorID sends numeric investor IDs as JSON numbers, which is what
// the orders and portfolios resources expect.
func jsonInvestorID(investorID string) interface{} {
	id, err := strconv.ParseInt(investorID, 10, 64)
	if err != nil {
		return investorID
	}

	return id
}
