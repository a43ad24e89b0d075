// Package lendingclub provides types, interfaces, and helpers for working with
// the LendingClub investor API.
//
// # Overview
//
// The lendingclub package defines the client interfaces (AccountClient,
// LoansClient), the request types (Order, AddFundsRequest, option structs),
// the Record type that holds every response, and the error taxonomy. A
// concrete implementation is provided by the lcclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// lcclient to construct a client and then use the interfaces defined here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/lendingclub/pkg/lcclient"
//	  "github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := lcclient.New(&lendingclub.Config{APIKey: "key", InvestorID: "12345"})
//	  if err != nil { log.Fatal(err) }
//
//	  cash, err := cli.Account().AvailableCash(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = cash
//	}
//
// A client built without an investor ID (lcclient.NewLoanClient) only exposes
// Loans(); account operations are not reachable from it.
//
// # Records
//
// The API documents its responses loosely and adds fields over time, so
// responses are not decoded into fixed structs. A Record keeps every field
// of the JSON object in response order and offers typed accessors:
//
//	summary, _ := cli.Account().Summary(ctx)
//	cash, err := summary.Decimal("availableCash")
//
// Record.Decode maps a record onto a caller-defined struct using json tags
// when a fixed shape is preferred.
//
// # Errors
//
// Three kinds of errors are returned:
//
//   - validation errors such as *MalformedURLComponentError or
//     ErrInvalidTransferFrequency, before any request is sent;
//   - *BusinessError when the API rejects a write with a list of messages
//     (HTTP 400 with an "errors" body);
//   - *HTTPError for every other non-2xx response.
//
// Helpers such as IsBusinessError, IsNotFound and IsUnauthorized make it easy
// to branch on common cases.
package lendingclub
