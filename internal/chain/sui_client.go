package chain

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/Mantelijo/sui-wallet-listener/internal/metrics"
	"github.com/Mantelijo/sui-wallet-listener/internal/transport"
)

const (
	methodGetTransactionBlock     = "sui_getTransactionBlock"
	methodExecuteTransactionBlock = "sui_executeTransactionBlock"
	methodGetCoins                = "suix_getCoins"
	methodQueryTransactionBlocks  = "suix_queryTransactionBlocks"
	methodPaySui                  = "unsafe_paySui"

	// WaitForLocalExecution makes the node return only after the transaction
	// effects are applied locally.
	WaitForLocalExecution = "WaitForLocalExecution"
)

// ChainClient is the set of Sui node calls the listener depends on.
type ChainClient interface {
	GetTransactionBlock(ctx context.Context, digest string) (*TransactionBlockResponse, error)
	GetCoins(ctx context.Context, owner, coinType string) ([]Coin, error)
	PaySui(ctx context.Context, req PaySuiRequest) (*TransactionBytes, error)
	ExecuteTransactionBlock(ctx context.Context, txBytes string, signatures []string) (*TransactionBlockResponse, error)
	QueryTransactionBlocks(ctx context.Context, filter TransactionFilter, cursor *string, limit int, descending bool) (*TransactionBlockPage, error)
}

func NewSuiClient(rpcUrl string, opts ...SuiClientOption) *suiClient {
	c := &suiClient{
		rpcUrl:  rpcUrl,
		headers: make(http.Header),
	}

	for _, opt := range opts {
		opt.Apply(c)
	}

	return c
}

var _ ChainClient = (*suiClient)(nil)

type suiClient struct {
	rpcUrl     string
	headers    http.Header
	httpClient *http.Client
	metrics    *metrics.Metrics

	c *rpc.Client
}

// Init dials the node. For http endpoints no connection is made until the
// first call.
func (s *suiClient) Init() error {
	httpClient := s.httpClient
	if httpClient == nil {
		httpClient = transport.NewStandardClient()
	}

	c, err := rpc.DialOptions(context.Background(), s.rpcUrl,
		rpc.WithHTTPClient(httpClient),
		rpc.WithHeaders(s.headers),
	)
	if err != nil {
		return fmt.Errorf("failed to dial sui rpc: %w", err)
	}
	s.c = c

	slog.Info("initialized sui rpc client",
		slog.String("rpc_url", s.rpcUrl),
	)

	return nil
}

func (s *suiClient) Close() {
	if s.c != nil {
		s.c.Close()
	}
}

func (s *suiClient) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	start := time.Now()
	err := s.c.CallContext(ctx, result, method, args...)
	s.metrics.RecordRPCCall(method, err, time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func (s *suiClient) GetTransactionBlock(ctx context.Context, digest string) (*TransactionBlockResponse, error) {
	res := &TransactionBlockResponse{}
	err := s.call(ctx, res, methodGetTransactionBlock, digest, TransactionBlockResponseOptions{
		ShowInput:          true,
		ShowEffects:        true,
		ShowEvents:         true,
		ShowBalanceChanges: true,
		ShowObjectChanges:  true,
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetCoins returns every coin of coinType owned by owner, following
// pagination.
func (s *suiClient) GetCoins(ctx context.Context, owner, coinType string) ([]Coin, error) {
	var (
		coins  []Coin
		cursor *string
	)
	for {
		page := &CoinPage{}
		if err := s.call(ctx, page, methodGetCoins, owner, coinType, cursor, nil); err != nil {
			return nil, err
		}
		coins = append(coins, page.Data...)
		if !page.HasNextPage || page.NextCursor == nil {
			return coins, nil
		}
		cursor = page.NextCursor
	}
}

func (s *suiClient) PaySui(ctx context.Context, req PaySuiRequest) (*TransactionBytes, error) {
	res := &TransactionBytes{}
	err := s.call(ctx, res, methodPaySui,
		req.Signer,
		req.InputCoins,
		req.Recipients,
		req.Amounts,
		req.GasBudget,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *suiClient) ExecuteTransactionBlock(ctx context.Context, txBytes string, signatures []string) (*TransactionBlockResponse, error) {
	res := &TransactionBlockResponse{}
	err := s.call(ctx, res, methodExecuteTransactionBlock,
		txBytes,
		signatures,
		TransactionBlockResponseOptions{
			ShowEffects: true,
			ShowEvents:  true,
		},
		WaitForLocalExecution,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type transactionBlockQuery struct {
	Filter  TransactionFilter               `json:"filter"`
	Options TransactionBlockResponseOptions `json:"options"`
}

func (s *suiClient) QueryTransactionBlocks(ctx context.Context, filter TransactionFilter, cursor *string, limit int, descending bool) (*TransactionBlockPage, error) {
	res := &TransactionBlockPage{}
	err := s.call(ctx, res, methodQueryTransactionBlocks,
		transactionBlockQuery{Filter: filter},
		cursor,
		limit,
		descending,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type SuiClientOption interface {
	Apply(*suiClient)
}

// WithHeaders adds headers to every rpc request, for example an api key.
type WithHeaders struct {
	Headers map[string]string
}

func (w WithHeaders) Apply(c *suiClient) {
	for k, v := range w.Headers {
		c.headers.Set(k, v)
	}
}

type WithHTTPClient struct {
	Client *http.Client
}

func (w WithHTTPClient) Apply(c *suiClient) {
	c.httpClient = w.Client
}

type WithMetrics struct {
	Metrics *metrics.Metrics
}

func (w WithMetrics) Apply(c *suiClient) {
	c.metrics = w.Metrics
}
