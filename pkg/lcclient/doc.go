// Package lcclient provides the primary entry point for constructing a
// LendingClub investor API client that implements the lendingclub.Client
// interface.
//
// It layers configuration, HTTP transport and API key authentication on top
// of the resource interfaces and types defined in the lendingclub package.
//
// Quick start
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
//
//	  // Full client: account and loan operations.
//	  cli, err := lcclient.New(&lendingclub.Config{
//	    APIKey:     "your-api-key",
//	    InvestorID: "12345678",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  notes, err := cli.Account().NotesOwned(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = notes
//
//	  // Loan-only client: no investor ID, only Loans().
//	  browser, err := lcclient.NewLoanClient(&lendingclub.Config{APIKey: "your-api-key"})
//	  if err != nil { log.Fatal(err) }
//
//	  listed, err := browser.Loans().ListedLoans(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = listed
//	}
//
// Endpoint
//
// Config.Endpoint defaults to lendingclub.DefaultEndpoint. A trailing slash is
// trimmed and "https://" is prepended when no scheme is given, which makes it
// easy to point the client at a sandbox or a local test server.
//
// Requests
//
// Every operation sends exactly one request and never retries. Use the
// context for per-call deadlines, or Config.HTTPTimeout for a client-wide one.
package lcclient
