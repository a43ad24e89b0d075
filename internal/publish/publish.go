// Package publish forwards listed loans to a NATS subject so other services
// can react to new listings without polling the API themselves.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// Message headers set on every published loan.
const (
	HeaderAsOfDate = "Lc-As-Of-Date"
	HeaderLoanID   = "Lc-Loan-Id"
)

// Conn is the part of *nats.Conn the publisher uses.
type Conn interface {
	PublishMsg(msg *nats.Msg) error
	FlushTimeout(timeout time.Duration) error
	Close()
}

// Publisher sends each loan of a listing as one message.
type Publisher struct {
	conn    Conn
	subject string
}

// Connect dials the NATS server at url and returns a publisher for subject.
func Connect(url, subject string, opts ...nats.Option) (*Publisher, error) {
	if subject == "" {
		return nil, constants.ErrNATSSubjectRequired
	}

	opts = append([]nats.Option{
		nats.Name(constants.DefaultUserAgent),
		nats.Timeout(constants.ShortHTTPTimeout),
	}, opts...)

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return &Publisher{conn: conn, subject: subject}, nil
}

// New returns a publisher over an existing connection.
func New(conn Conn, subject string) (*Publisher, error) {
	if subject == "" {
		return nil, constants.ErrNATSSubjectRequired
	}

	return &Publisher{conn: conn, subject: subject}, nil
}

// PublishListing publishes every loan of listed and waits for the server to
// acknowledge them. It returns the number of loans published.
func (p *Publisher) PublishListing(ctx context.Context, listed *lendingclub.ListedLoans) (int, error) {
	if listed == nil {
		return 0, nil
	}

	published := 0

	for _, loan := range listed.Loans {
		if err := ctx.Err(); err != nil {
			return published, fmt.Errorf("publishing listing: %w", err)
		}

		data, err := json.Marshal(loan)
		if err != nil {
			return published, fmt.Errorf("encoding loan: %w", err)
		}

		msg := nats.NewMsg(p.subject)
		msg.Data = data
		msg.Header.Set(HeaderAsOfDate, listed.AsOfDate)

		if id, err := loan.Int64("id"); err == nil {
			msg.Header.Set(HeaderLoanID, strconv.FormatInt(id, 10))
		}

		err = p.conn.PublishMsg(msg)
		if err != nil {
			return published, fmt.Errorf("publishing loan: %w", err)
		}

		published++
	}

	err := p.conn.FlushTimeout(constants.NATSFlushTimeout)
	if err != nil {
		return published, fmt.Errorf("flushing NATS connection: %w", err)
	}

	return published, nil
}

// Close closes the underlying connection.
func (p *Publisher) Close() {
	p.conn.Close()
}
