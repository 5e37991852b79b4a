package chain

import (
	"context"
	"encoding/json"
)

// TransactionSubscriber opens live transaction streams for an address.
type TransactionSubscriber interface {
	// Subscribe opens a stream of transactions matching filter. ctx bounds
	// only the opening handshake, the stream lives until Unsubscribe.
	Subscribe(ctx context.Context, filter TransactionFilter) (Subscription, error)

	// Name returns the subscriber implementation name, used in logs.
	Name() string
}

// Subscription is a single live stream of transaction events. Events are
// delivered in the order the node produced them. The Events channel is closed
// once the subscription ends.
type Subscription interface {
	Events() <-chan *TransactionEvent

	// Err reports stream failures. A failure does not necessarily end the
	// subscription.
	Err() <-chan error

	// Unsubscribe ends the stream and releases its resources. Calling it more
	// than once is safe.
	Unsubscribe() error
}

// TransactionEvent is a transaction observed through a subscription.
type TransactionEvent struct {
	Digest string
	Filter TransactionFilter
}

type FilterKind string

const (
	ToAddress   FilterKind = "ToAddress"
	FromAddress FilterKind = "FromAddress"
)

// TransactionFilter selects transactions by sender or recipient address.
type TransactionFilter struct {
	Kind    FilterKind
	Address string
}

func (f TransactionFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{string(f.Kind): f.Address})
}

func (f TransactionFilter) String() string {
	return string(f.Kind) + "=" + f.Address
}
