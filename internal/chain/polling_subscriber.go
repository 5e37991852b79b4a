package chain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Mantelijo/sui-wallet-listener/internal/metrics"
)

const pollPageLimit = 50

type queryTransactionBlocksFn func(ctx context.Context, filter TransactionFilter, cursor *string, limit int, descending bool) (*TransactionBlockPage, error)

func NewPollingSubscriber(client ChainClient, interval time.Duration, opts ...PollingSubscriberOption) *pollingSubscriber {
	p := &pollingSubscriber{
		interval:               interval,
		queryTransactionBlocks: client.QueryTransactionBlocks,
	}

	for _, opt := range opts {
		opt.Apply(p)
	}

	return p
}

var _ TransactionSubscriber = (*pollingSubscriber)(nil)

// pollingSubscriber emulates a subscription by querying transaction blocks
// matching the filter on a fixed interval. It is used against nodes that do
// not serve websocket subscriptions.
type pollingSubscriber struct {
	interval time.Duration
	metrics  *metrics.Metrics

	queryTransactionBlocks queryTransactionBlocksFn
}

func (p *pollingSubscriber) Name() string {
	return "polling"
}

// Subscribe resolves the newest transaction matching filter and emits every
// transaction that lands after it.
func (p *pollingSubscriber) Subscribe(ctx context.Context, filter TransactionFilter) (Subscription, error) {
	page, err := p.queryTransactionBlocks(ctx, filter, nil, 1, true)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest transaction for %s: %w", filter, err)
	}

	var cursor *string
	if len(page.Data) > 0 {
		digest := page.Data[0].Digest
		cursor = &digest
	}

	subCtx, cancel := context.WithCancel(context.Background())
	sub := &pollingSubscription{
		p:      p,
		filter: filter,
		cursor: cursor,
		ctx:    subCtx,
		cancel: cancel,
		events: make(chan *TransactionEvent, subscriptionBufferSize),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	go sub.loop()

	slog.Info("started polling transaction subscription",
		slog.String("filter", filter.String()),
		slog.Duration("interval", p.interval),
	)

	return sub, nil
}

type pollingSubscription struct {
	p      *pollingSubscriber
	filter TransactionFilter
	cursor *string

	ctx    context.Context
	cancel context.CancelFunc

	events chan *TransactionEvent
	errs   chan error
	done   chan struct{}
	once   sync.Once
}

func (s *pollingSubscription) Events() <-chan *TransactionEvent {
	return s.events
}

func (s *pollingSubscription) Err() <-chan error {
	return s.errs
}

func (s *pollingSubscription) loop() {
	defer close(s.done)
	defer close(s.events)

	ticker := time.NewTicker(s.p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if !s.poll() {
				return
			}
		}
	}
}

// poll drains every page newer than the cursor. It returns false once the
// subscription is closing.
func (s *pollingSubscription) poll() bool {
	for {
		page, err := s.p.queryTransactionBlocks(s.ctx, s.filter, s.cursor, pollPageLimit, false)
		if err != nil {
			if s.ctx.Err() != nil {
				return false
			}
			s.reportErr(fmt.Errorf("failed to query transactions for %s: %w", s.filter, err))
			return true
		}

		for _, tx := range page.Data {
			s.p.metrics.RecordSubscriptionEvent(string(s.filter.Kind))
			select {
			case s.events <- &TransactionEvent{Digest: tx.Digest, Filter: s.filter}:
			case <-s.ctx.Done():
				return false
			}
			digest := tx.Digest
			s.cursor = &digest
		}
		if page.NextCursor != nil {
			s.cursor = page.NextCursor
		}
		if !page.HasNextPage {
			return true
		}
	}
}

func (s *pollingSubscription) reportErr(err error) {
	s.p.metrics.RecordSubscriptionError(string(s.filter.Kind))
	select {
	case s.errs <- err:
	default:
		slog.Warn("dropped subscription error",
			slog.String("filter", s.filter.String()),
			slog.Any("error", err),
		)
	}
}

func (s *pollingSubscription) Unsubscribe() error {
	s.once.Do(func() {
		s.cancel()
		<-s.done
		slog.Info("stopped polling transaction subscription",
			slog.String("filter", s.filter.String()),
		)
	})
	return nil
}

type PollingSubscriberOption interface {
	Apply(*pollingSubscriber)
}

type WithPollingMetrics struct {
	Metrics *metrics.Metrics
}

func (w WithPollingMetrics) Apply(p *pollingSubscriber) {
	p.metrics = w.Metrics
}
