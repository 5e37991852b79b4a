// Package monitor keeps the transaction subscriptions of the monitored
// address open and routes every observed transaction through the classifier
// to the confirmation sinks.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Mantelijo/sui-wallet-listener/internal/chain"
	"github.com/Mantelijo/sui-wallet-listener/internal/metrics"
	"github.com/Mantelijo/sui-wallet-listener/internal/report"
)

var (
	ErrSubscriptionFailed = errors.New("failed to subscribe to transactions")
	ErrSubscriptionLost   = errors.New("transaction subscription lost")
)

const (
	defaultResubscribeAttempts = 5
	defaultResubscribeDelay    = time.Second
)

// TransactionFetcher resolves a digest into the full transaction detail.
type TransactionFetcher interface {
	GetTransactionBlock(ctx context.Context, digest string) (*chain.TransactionBlockResponse, error)
}

// ReportSender delivers a report. Delivery is best effort.
type ReportSender interface {
	Send(ctx context.Context, r *report.TransactionReport)
}

func NewController(
	subscriber chain.TransactionSubscriber,
	fetcher TransactionFetcher,
	sender ReportSender,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		subscriber:          subscriber,
		fetcher:             fetcher,
		sender:              sender,
		failures:            make(chan error, 1),
		resubscribeAttempts: defaultResubscribeAttempts,
		resubscribeDelay:    defaultResubscribeDelay,
	}

	for _, opt := range opts {
		opt.Apply(c)
	}

	return c
}

// Controller owns at most one monitoring session: a ToAddress and a
// FromAddress subscription of the monitored address. Start and Stop are safe
// for concurrent use.
//
// A subscription whose stream ends while the session is running is opened
// again. When that keeps failing the error is published on Failures.
type Controller struct {
	subscriber chain.TransactionSubscriber
	fetcher    TransactionFetcher
	sender     ReportSender
	metrics    *metrics.Metrics

	failures            chan error
	resubscribeAttempts uint
	resubscribeDelay    time.Duration

	mu      sync.Mutex
	session *session
}

type session struct {
	address string

	// cancelled once the session is stopping, buffered events are discarded
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu   sync.Mutex
	subs []chain.Subscription
	lost int
}

// Start opens both subscriptions for address. A running session is stopped
// first. If either subscription fails nothing is left open.
func (c *Controller) Start(ctx context.Context, address string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		slog.Info("restarting transaction monitoring",
			slog.String("address", c.session.address),
		)
		c.stopLocked()
	}

	filters := []chain.TransactionFilter{
		{Kind: chain.ToAddress, Address: address},
		{Kind: chain.FromAddress, Address: address},
	}
	subs := make([]chain.Subscription, len(filters))

	g, gctx := errgroup.WithContext(ctx)
	for i, filter := range filters {
		g.Go(func() error {
			sub, err := c.subscriber.Subscribe(gctx, filter)
			if err != nil {
				return fmt.Errorf("%s: %w", filter, err)
			}
			subs[i] = sub
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, sub := range subs {
			if sub == nil {
				continue
			}
			if uerr := sub.Unsubscribe(); uerr != nil {
				slog.Warn("failed to roll back subscription", slog.Any("error", uerr))
			}
		}
		return fmt.Errorf("%w: %w", ErrSubscriptionFailed, err)
	}

	s := &session{
		address: address,
		subs:    subs,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	for i, sub := range subs {
		s.wg.Add(1)
		go c.consume(s, i, filters[i], sub)
	}
	c.session = s
	c.metrics.SetActiveSubscriptions(len(subs))

	slog.Info("started transaction monitoring",
		slog.String("address", address),
		slog.String("subscriber", c.subscriber.Name()),
	)

	return nil
}

// Stop closes the active session and waits for in flight events to finish.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		slog.Warn("transaction monitoring is not running")
		return
	}
	c.stopLocked()
}

func (c *Controller) stopLocked() {
	s := c.session

	s.mu.Lock()
	for _, sub := range s.subs {
		if sub == nil {
			continue
		}
		if err := sub.Unsubscribe(); err != nil {
			slog.Warn("failed to unsubscribe", slog.Any("error", err))
		}
	}
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()

	c.session = nil
	c.metrics.SetActiveSubscriptions(0)

	slog.Info("stopped transaction monitoring", slog.String("address", s.address))
}

// Active reports whether a monitoring session is running with all of its
// subscriptions open.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return false
	}
	c.session.mu.Lock()
	defer c.session.mu.Unlock()
	return c.session.lost == 0
}

// Failures delivers subscriptions that were lost and could not be opened
// again. The session keeps running with the remaining subscription until it
// is stopped or restarted.
func (c *Controller) Failures() <-chan error {
	return c.failures
}

// consume handles the events of subscription i sequentially.
func (c *Controller) consume(s *session, i int, filter chain.TransactionFilter, sub chain.Subscription) {
	defer s.wg.Done()

	events := sub.Events()
	errs := sub.Err()
	for {
		select {
		case <-s.ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			slog.Error("transaction subscription error",
				slog.String("filter", filter.String()),
				slog.Any("error", err),
			)
		case event, ok := <-events:
			if !ok {
				if !s.release(i, sub) {
					return
				}
				slog.Warn("transaction subscription closed, resubscribing", slog.String("filter", filter.String()))

				sub = c.resubscribe(s, i, filter)
				if sub == nil {
					return
				}
				events = sub.Events()
				errs = sub.Err()
				continue
			}
			if s.ctx.Err() != nil {
				return
			}
			c.handleEvent(s.address, event)
		}
	}
}

// release detaches the ended subscription i from the session and frees it.
// It returns false when the session is already stopping.
func (s *session) release(i int, sub chain.Subscription) bool {
	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return false
	}
	s.subs[i] = nil
	s.mu.Unlock()

	if err := sub.Unsubscribe(); err != nil {
		slog.Debug("failed to release closed subscription", slog.Any("error", err))
	}
	return true
}

// resubscribe replaces subscription i of the session. It returns nil when the
// session stopped meanwhile or every attempt failed.
func (c *Controller) resubscribe(s *session, i int, filter chain.TransactionFilter) chain.Subscription {
	var sub chain.Subscription
	err := retry.Do(
		func() error {
			var err error
			sub, err = c.subscriber.Subscribe(s.ctx, filter)
			return err
		},
		retry.Attempts(c.resubscribeAttempts),
		retry.Delay(c.resubscribeDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(s.ctx),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("failed to resubscribe, retrying",
				slog.String("filter", filter.String()),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		if sub != nil {
			if uerr := sub.Unsubscribe(); uerr != nil {
				slog.Warn("failed to unsubscribe", slog.Any("error", uerr))
			}
		}
		return nil
	}

	if err != nil {
		s.lost++
		c.metrics.SetActiveSubscriptions(len(s.subs) - s.lost)

		err = fmt.Errorf("%w: %s: %w", ErrSubscriptionLost, filter, err)
		slog.Error("failed to resubscribe", slog.Any("error", err))
		select {
		case c.failures <- err:
		default:
		}
		return nil
	}

	s.subs[i] = sub
	slog.Info("resubscribed to transactions", slog.String("filter", filter.String()))
	return sub
}

// handleEvent runs on a context detached from the session so that stopping
// the session never interrupts a fetch or a delivery.
func (c *Controller) handleEvent(address string, event *chain.TransactionEvent) {
	ctx := context.Background()

	tx, err := c.fetcher.GetTransactionBlock(ctx, event.Digest)
	if err != nil {
		c.metrics.RecordDetailFetchFailure()
		slog.Error("failed to fetch transaction detail",
			slog.String("digest", event.Digest),
			slog.Any("error", err),
		)
		return
	}
	if tx.Digest == "" {
		tx.Digest = event.Digest
	}

	r := report.Classify(tx, address)
	c.metrics.RecordReport(string(r.Type), string(r.Status))

	slog.Info("processed transaction",
		slog.String("digest", r.Digest),
		slog.String("filter", string(event.Filter.Kind)),
		slog.String("type", string(r.Type)),
		slog.String("status", string(r.Status)),
		slog.String("amount_sui", report.FormatSui(r.SuiAmountChange)),
	)

	c.sender.Send(ctx, r)
}

type ControllerOption interface {
	Apply(*Controller)
}

type WithMetrics struct {
	Metrics *metrics.Metrics
}

func (w WithMetrics) Apply(c *Controller) {
	c.metrics = w.Metrics
}

// WithResubscribe overrides how often and how fast a lost subscription is
// opened again.
type WithResubscribe struct {
	Attempts uint
	Delay    time.Duration
}

func (w WithResubscribe) Apply(c *Controller) {
	c.resubscribeAttempts = w.Attempts
	c.resubscribeDelay = w.Delay
}
