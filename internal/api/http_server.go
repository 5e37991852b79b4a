package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mantelijo/sui-wallet-listener/internal/chain"
	"github.com/Mantelijo/sui-wallet-listener/internal/metrics"
	"github.com/Mantelijo/sui-wallet-listener/internal/validator"
	"github.com/Mantelijo/sui-wallet-listener/internal/withdrawal"
)

const maxRequestBodyBytes = 1 << 20

// Withdrawer executes an outbound transfer and returns its digest.
type Withdrawer interface {
	Withdraw(ctx context.Context, recipient string, amount int64) (string, error)
}

// WalletInfo is the public wallet information served by GET /api/wallet.
type WalletInfo struct {
	Address          string `json:"address"`
	MonitoredAddress string `json:"monitoredAddress"`
	Network          string `json:"network"`
}

func NewHttpServer(addr, port string, withdrawer Withdrawer, faucet chain.Faucet, wallet WalletInfo, opts ...Option) *httpServer {
	s := &httpServer{
		addr:       addr,
		port:       port,
		withdrawer: withdrawer,
		faucet:     faucet,
		wallet:     wallet,
		gatherer:   prometheus.DefaultGatherer,
		srv: &http.Server{
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt.Apply(s)
	}

	return s
}

var _ Server = (*httpServer)(nil)

type httpServer struct {
	addr string
	port string

	withdrawer Withdrawer
	faucet     chain.Faucet
	wallet     WalletInfo

	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer

	srv *http.Server
}

func (s *httpServer) Serve() error {
	router := http.NewServeMux()
	s.registerRoutes(router)
	return s.startServer(router)
}

func (s *httpServer) startServer(r *http.ServeMux) error {
	bindAddr := net.JoinHostPort(s.addr, s.port)

	l, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return err
	}
	s.port = strconv.Itoa(l.Addr().(*net.TCPAddr).Port)

	slog.Info("starting http api server",
		slog.String("addr", s.addr),
		slog.String("port", s.port),
	)

	s.srv.Handler = r
	if err := s.srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *httpServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *httpServer) registerRoutes(r *http.ServeMux) {
	r.Handle("GET /api/health", s.instrument("health", http.HandlerFunc(s.health)))
	r.Handle("POST /api/withdrawSuiCoin", s.instrument("withdraw_sui_coin", http.HandlerFunc(s.withdrawSuiCoin)))
	r.Handle("GET /api/wallet", s.instrument("wallet", http.HandlerFunc(s.walletInfo)))
	r.Handle("POST /api/fundWallet", s.instrument("fund_wallet", http.HandlerFunc(s.fundWallet)))
	r.Handle("GET /metrics", s.instrument("metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

func (s *httpServer) instrument(name string, h http.Handler) http.Handler {
	return metrics.HTTPMetricsMiddleware(s.metrics, name)(h)
}

func (s *httpServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type WithdrawRequest struct {
	RecipientAddress string      `json:"recipientAddress"`
	Amount           json.Number `json:"amount"`
}

type withdrawInput struct {
	RecipientAddress string `validate:"required,sui_address"`
	Amount           int64  `validate:"gt=0"`
}

// Response is the body of every json endpoint.
type Response struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	TransactionDigest string `json:"transactionDigest,omitempty"`
	Error             string `json:"error,omitempty"`
}

const invalidWithdrawRequestMessage = "Invalid request: recipientAddress and a positive amount are required (amount in MIST)."

func (s *httpServer) withdrawSuiCoin(w http.ResponseWriter, r *http.Request) {
	req := &WithdrawRequest{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(req); err != nil {
		slog.Warn("failed to parse withdrawal request", slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, Response{Message: invalidWithdrawRequestMessage})
		return
	}

	amount, err := req.Amount.Int64()
	if err != nil {
		slog.Warn("invalid withdrawal amount", slog.String("amount", req.Amount.String()))
		writeJSON(w, http.StatusBadRequest, Response{Message: invalidWithdrawRequestMessage})
		return
	}

	in := withdrawInput{RecipientAddress: req.RecipientAddress, Amount: amount}
	if err := validator.Validate(in); err != nil {
		slog.Warn("invalid withdrawal request", slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, Response{Message: invalidWithdrawRequestMessage})
		return
	}

	// validated above
	recipient, _ := chain.NormalizeAddress(in.RecipientAddress)

	slog.Info("received withdrawal request",
		slog.String("recipient", recipient),
		slog.Int64("amount", in.Amount),
	)

	digest, err := s.withdrawer.Withdraw(r.Context(), recipient, in.Amount)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, withdrawal.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, Response{
			Message: "Withdrawal failed: " + err.Error(),
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success:           true,
		Message:           "Withdrawal initiated successfully.",
		TransactionDigest: digest,
	})
}

func (s *httpServer) walletInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.wallet)
}

type FundWalletRequest struct {
	Address string `json:"address"`
}

func (s *httpServer) fundWallet(w http.ResponseWriter, r *http.Request) {
	reqBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		slog.Error("failed to read request body", slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, Response{Message: "failed to read request"})
		return
	}

	req := &FundWalletRequest{}
	if len(reqBytes) > 0 {
		if err := json.Unmarshal(reqBytes, req); err != nil {
			slog.Warn("failed to parse fund request", slog.Any("error", err))
			writeJSON(w, http.StatusBadRequest, Response{Message: "failed to parse request"})
			return
		}
	}

	address := req.Address
	if address == "" {
		address = s.wallet.Address
	}
	if !chain.IsValidAddress(address) {
		writeJSON(w, http.StatusBadRequest, Response{Message: "Invalid request: address is not a valid Sui address."})
		return
	}

	digest, err := s.faucet.RequestSui(r.Context(), address)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chain.ErrFaucetUnavailable) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, Response{
			Message: "Funding failed: " + err.Error(),
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success:           true,
		Message:           "Wallet funded successfully.",
		TransactionDigest: digest,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", slog.Any("error", err))
	}
}

type Option interface {
	Apply(*httpServer)
}

// WithMetrics instruments every route and serves gatherer on /metrics.
type WithMetrics struct {
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

func (w WithMetrics) Apply(s *httpServer) {
	s.metrics = w.Metrics
	if w.Gatherer != nil {
		s.gatherer = w.Gatherer
	}
}
