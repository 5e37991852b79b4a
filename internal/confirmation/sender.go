// Package confirmation delivers transaction reports to the confirmation
// backend and the optional broker sinks. Delivery is best effort: failures are
// logged and counted, never returned to the caller.
package confirmation

import (
	"context"
	"errors"

	"github.com/Mantelijo/sui-wallet-listener/internal/report"
)

var ErrDeliveryFailed = errors.New("report delivery failed")

type Sender interface {
	Send(ctx context.Context, r *report.TransactionReport)
}

// FanOut delivers every report to each sender in order.
type FanOut []Sender

var _ Sender = (FanOut)(nil)

func (f FanOut) Send(ctx context.Context, r *report.TransactionReport) {
	for _, s := range f {
		s.Send(ctx, r)
	}
}
