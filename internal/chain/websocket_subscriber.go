package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Mantelijo/sui-wallet-listener/internal/metrics"
)

const (
	methodSubscribeTransaction   = "suix_subscribeTransaction"
	methodUnsubscribeTransaction = "suix_unsubscribeTransaction"

	defaultHandshakeTimeout = 10 * time.Second
	unsubscribeWriteTimeout = 5 * time.Second
	subscriptionBufferSize  = 100
)

func NewWebsocketSubscriber(wsUrl string, opts ...WebsocketSubscriberOption) *websocketSubscriber {
	s := &websocketSubscriber{
		wsUrl:  wsUrl,
		header: make(http.Header),
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: defaultHandshakeTimeout,
		},
	}

	for _, opt := range opts {
		opt.Apply(s)
	}

	return s
}

var _ TransactionSubscriber = (*websocketSubscriber)(nil)

// websocketSubscriber opens one websocket connection per subscription and
// uses the suix_subscribeTransaction pub/sub api.
type websocketSubscriber struct {
	wsUrl   string
	header  http.Header
	dialer  *websocket.Dialer
	metrics *metrics.Metrics
}

func (s *websocketSubscriber) Name() string {
	return "websocket"
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcMessage struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *rpcError       `json:"error,omitempty"`
}

func (m *rpcMessage) hasID(id string) bool {
	var got string
	if err := json.Unmarshal(m.ID, &got); err != nil {
		return false
	}
	return got == id
}

type transactionNotification struct {
	Subscription json.RawMessage    `json:"subscription"`
	Result       TransactionEffects `json:"result"`
}

func (s *websocketSubscriber) Subscribe(ctx context.Context, filter TransactionFilter) (Subscription, error) {
	conn, _, err := s.dialer.DialContext(ctx, s.wsUrl, s.header)
	if err != nil {
		return nil, fmt.Errorf("failed to dial websocket: %w", err)
	}

	// Unblock reads and writes of the handshake when ctx is cancelled.
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultHandshakeTimeout)
	}
	conn.SetReadDeadline(deadline)
	conn.SetWriteDeadline(deadline)

	id := uuid.NewString()
	err = conn.WriteJSON(rpcRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  methodSubscribeTransaction,
		Params:  []interface{}{filter},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to send subscribe request: %w", err)
	}

	var subID json.RawMessage
	for subID == nil {
		msg := &rpcMessage{}
		if err := conn.ReadJSON(msg); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to read subscribe response: %w", err)
		}
		if !msg.hasID(id) {
			continue
		}
		if msg.Error != nil {
			conn.Close()
			return nil, fmt.Errorf("subscribe %s rejected: %w", filter, msg.Error)
		}
		subID = msg.Result
	}

	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})

	sub := &websocketSubscription{
		conn:    conn,
		filter:  filter,
		subID:   subID,
		metrics: s.metrics,
		events:  make(chan *TransactionEvent, subscriptionBufferSize),
		errs:    make(chan error, 1),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go sub.readLoop()

	slog.Info("opened websocket transaction subscription",
		slog.String("filter", filter.String()),
		slog.String("subscription_id", string(subID)),
	)

	return sub, nil
}

type websocketSubscription struct {
	conn    *websocket.Conn
	filter  TransactionFilter
	subID   json.RawMessage
	metrics *metrics.Metrics

	events chan *TransactionEvent
	errs   chan error

	closing chan struct{}
	done    chan struct{}
	once    sync.Once
	// conn write mutex
	writeMu sync.Mutex
}

func (s *websocketSubscription) Events() <-chan *TransactionEvent {
	return s.events
}

func (s *websocketSubscription) Err() <-chan error {
	return s.errs
}

func (s *websocketSubscription) readLoop() {
	defer close(s.done)
	defer close(s.events)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.closing:
			default:
				s.reportErr(fmt.Errorf("websocket read failed: %w", err))
			}
			return
		}

		msg := &rpcMessage{}
		if err := json.Unmarshal(data, msg); err != nil {
			s.reportErr(fmt.Errorf("failed to decode websocket message: %w", err))
			continue
		}
		if msg.Method != methodSubscribeTransaction {
			continue
		}

		n := &transactionNotification{}
		if err := json.Unmarshal(msg.Params, n); err != nil {
			s.reportErr(fmt.Errorf("failed to decode transaction notification: %w", err))
			continue
		}
		digest := n.Result.TransactionDigest
		if err := ValidateDigest(digest); err != nil {
			slog.Warn("dropping notification with invalid digest",
				slog.String("filter", s.filter.String()),
				slog.Any("error", err),
			)
			continue
		}

		s.metrics.RecordSubscriptionEvent(string(s.filter.Kind))
		select {
		case s.events <- &TransactionEvent{Digest: digest, Filter: s.filter}:
		case <-s.closing:
			return
		}
	}
}

// reportErr never blocks the read loop. Errors nobody is reading are logged
// and dropped.
func (s *websocketSubscription) reportErr(err error) {
	s.metrics.RecordSubscriptionError(string(s.filter.Kind))
	select {
	case s.errs <- err:
	default:
		slog.Warn("dropped subscription error",
			slog.String("filter", s.filter.String()),
			slog.Any("error", err),
		)
	}
}

func (s *websocketSubscription) Unsubscribe() error {
	var err error
	s.once.Do(func() {
		close(s.closing)

		s.writeMu.Lock()
		s.conn.SetWriteDeadline(time.Now().Add(unsubscribeWriteTimeout))
		writeErr := s.conn.WriteJSON(rpcRequest{
			JSONRPC: "2.0",
			ID:      uuid.NewString(),
			Method:  methodUnsubscribeTransaction,
			Params:  []interface{}{s.subID},
		})
		if writeErr == nil {
			s.conn.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			)
		}
		s.writeMu.Unlock()

		closeErr := s.conn.Close()
		<-s.done

		if writeErr != nil {
			writeErr = fmt.Errorf("failed to send unsubscribe request: %w", writeErr)
		}
		err = errors.Join(writeErr, closeErr)

		slog.Info("closed websocket transaction subscription",
			slog.String("filter", s.filter.String()),
		)
	})
	return err
}

type WebsocketSubscriberOption interface {
	Apply(*websocketSubscriber)
}

type WithWebsocketHeaders struct {
	Headers map[string]string
}

func (w WithWebsocketHeaders) Apply(s *websocketSubscriber) {
	for k, v := range w.Headers {
		s.header.Set(k, v)
	}
}

type WithWebsocketMetrics struct {
	Metrics *metrics.Metrics
}

func (w WithWebsocketMetrics) Apply(s *websocketSubscriber) {
	s.metrics = w.Metrics
}
