// Package withdrawal sends SUI from the monitored wallet.
package withdrawal

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Mantelijo/sui-wallet-listener/internal/chain"
	"github.com/Mantelijo/sui-wallet-listener/internal/metrics"
)

const (
	DefaultGasBudget int64 = 10_000_000

	unknownFailureMessage = "Unknown error during withdrawal."
)

var (
	ErrInvalidArgument = errors.New("invalid withdrawal request")
	ErrExecutionFailed = errors.New("withdrawal execution failed")
)

// Chain is the subset of node calls needed to build and execute a transfer.
type Chain interface {
	GetCoins(ctx context.Context, owner, coinType string) ([]chain.Coin, error)
	PaySui(ctx context.Context, req chain.PaySuiRequest) (*chain.TransactionBytes, error)
	ExecuteTransactionBlock(ctx context.Context, txBytes string, signatures []string) (*chain.TransactionBlockResponse, error)
}

type TransactionSigner interface {
	Address() string
	SignTransaction(txBytes []byte) (string, error)
}

func NewExecutor(c Chain, signer TransactionSigner, opts ...ExecutorOption) *Executor {
	e := &Executor{
		chain:     c,
		signer:    signer,
		gasBudget: DefaultGasBudget,
	}

	for _, opt := range opts {
		opt.Apply(e)
	}

	return e
}

// Executor transfers SUI from the signer's address. Calls are independent and
// may run concurrently.
type Executor struct {
	chain     Chain
	signer    TransactionSigner
	gasBudget int64
	metrics   *metrics.Metrics
}

// Withdraw sends amount MIST to recipient and returns the transaction digest
// once the node reports successful effects.
func (e *Executor) Withdraw(ctx context.Context, recipient string, amount int64) (string, error) {
	digest, err := e.withdraw(ctx, recipient, amount)
	e.metrics.RecordWithdrawal(err)
	if err != nil {
		slog.Error("withdrawal failed",
			slog.String("recipient", recipient),
			slog.Int64("amount", amount),
			slog.Any("error", err),
		)
		return "", err
	}

	slog.Info("withdrawal executed",
		slog.String("recipient", recipient),
		slog.Int64("amount", amount),
		slog.String("digest", digest),
	)
	return digest, nil
}

func (e *Executor) withdraw(ctx context.Context, recipient string, amount int64) (string, error) {
	if recipient == "" {
		return "", fmt.Errorf("%w: recipient address is required", ErrInvalidArgument)
	}
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidArgument, amount)
	}

	sender := e.signer.Address()

	coins, err := e.chain.GetCoins(ctx, sender, chain.SuiCoinType)
	if err != nil {
		return "", fmt.Errorf("failed to load coins: %w", err)
	}
	if len(coins) == 0 {
		return "", fmt.Errorf("%w: insufficient balance, no SUI coins owned by %s", ErrExecutionFailed, sender)
	}

	coinIDs := make([]string, 0, len(coins))
	for _, c := range coins {
		coinIDs = append(coinIDs, c.CoinObjectID)
	}

	tx, err := e.chain.PaySui(ctx, chain.PaySuiRequest{
		Signer:     sender,
		InputCoins: coinIDs,
		Recipients: []string{recipient},
		Amounts:    []string{strconv.FormatInt(amount, 10)},
		GasBudget:  strconv.FormatInt(e.gasBudget, 10),
	})
	if err != nil {
		return "", fmt.Errorf("failed to build transaction: %w", err)
	}

	txBytes, err := base64.StdEncoding.DecodeString(tx.TxBytes)
	if err != nil {
		return "", fmt.Errorf("failed to decode transaction bytes: %w", err)
	}
	signature, err := e.signer.SignTransaction(txBytes)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	res, err := e.chain.ExecuteTransactionBlock(ctx, tx.TxBytes, []string{signature})
	if err != nil {
		return "", fmt.Errorf("failed to execute transaction: %w", err)
	}

	if res.Effects == nil || res.Effects.Status.Status != chain.ExecutionStatusSuccess {
		msg := unknownFailureMessage
		if res.Effects != nil && res.Effects.Status.Error != "" {
			msg = res.Effects.Status.Error
		}
		return "", fmt.Errorf("%w: %s", ErrExecutionFailed, msg)
	}

	return res.Digest, nil
}

type ExecutorOption interface {
	Apply(*Executor)
}

// WithGasBudget sets the gas budget in MIST. Non-positive values are ignored.
type WithGasBudget struct {
	Budget int64
}

func (w WithGasBudget) Apply(e *Executor) {
	if w.Budget > 0 {
		e.gasBudget = w.Budget
	}
}

type WithMetrics struct {
	Metrics *metrics.Metrics
}

func (w WithMetrics) Apply(e *Executor) {
	e.metrics = w.Metrics
}
