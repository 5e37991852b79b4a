package svc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Mantelijo/sui-wallet-listener/internal/api"
	"github.com/Mantelijo/sui-wallet-listener/internal/chain"
	"github.com/Mantelijo/sui-wallet-listener/internal/config"
	"github.com/Mantelijo/sui-wallet-listener/internal/confirmation"
	"github.com/Mantelijo/sui-wallet-listener/internal/metrics"
	"github.com/Mantelijo/sui-wallet-listener/internal/monitor"
	"github.com/Mantelijo/sui-wallet-listener/internal/wallet"
	"github.com/Mantelijo/sui-wallet-listener/internal/withdrawal"
)

const shutdownTimeout = 30 * time.Second

var ErrMonitoredWalletMismatch = errors.New("monitored wallet is not the signing wallet")

// SuiWalletListener wires the service components from the loaded
// configuration.
type SuiWalletListener struct{}

// Setup loads the required configuration and installs the default logger.
// It must succeed before any other method is called.
func (SuiWalletListener) Setup() error {
	initLogger(slog.LevelInfo)

	if err := config.LoadRequiredEnv(); err != nil {
		return fmt.Errorf("failed to load required env values: %w", err)
	}

	initLogger(config.LogLevel())
	return nil
}

func initLogger(level slog.Level) {
	logger := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	slog.SetDefault(slog.New(logger))
}

// Wallet returns the address and seed of the configured private key.
func (SuiWalletListener) Wallet() (wallet.WalletInfo, error) {
	signer, err := wallet.LoadSigner(config.Global.String(config.SUI_PRIVATE_KEY))
	if err != nil {
		return wallet.WalletInfo{}, err
	}
	return signer.Info(), nil
}

// Fund requests faucet funds for address, or for the configured wallet when
// address is empty.
func (s SuiWalletListener) Fund(ctx context.Context, address string) (string, error) {
	endpoints, err := config.ResolveEndpoints()
	if err != nil {
		return "", err
	}

	if address == "" {
		info, err := s.Wallet()
		if err != nil {
			return "", err
		}
		address = info.Address
	}

	return chain.NewFaucet(endpoints.FaucetURL).RequestSui(ctx, address)
}

// Serve runs the listener until ctx is cancelled or SIGINT/SIGTERM is
// received. Monitoring is stopped before the api server shuts down.
func (SuiWalletListener) Serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	endpoints, err := config.ResolveEndpoints()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry)

	client := chain.NewSuiClient(endpoints.RPCURL,
		chain.WithHeaders{Headers: endpoints.Headers},
		chain.WithMetrics{Metrics: m},
	)
	if err := client.Init(); err != nil {
		return err
	}
	defer client.Close()

	signer, err := wallet.LoadSigner(config.Global.String(config.SUI_PRIVATE_KEY))
	if err != nil {
		return err
	}

	monitored, err := monitoredAddress(signer)
	if err != nil {
		return err
	}

	var subscriber chain.TransactionSubscriber
	switch config.Global.String(config.SUI_SUBSCRIPTION_MODE) {
	case config.ModePolling:
		subscriber = chain.NewPollingSubscriber(client,
			config.Global.Duration(config.SUI_POLL_INTERVAL),
			chain.WithPollingMetrics{Metrics: m},
		)
	default:
		subscriber = chain.NewWebsocketSubscriber(endpoints.WSURL,
			chain.WithWebsocketHeaders{Headers: endpoints.Headers},
			chain.WithWebsocketMetrics{Metrics: m},
		)
	}

	sinks, closers, err := newReportSinks(ctx, monitored, m)
	if err != nil {
		return err
	}
	defer closeAll(closers)

	controller := monitor.NewController(subscriber, client, sinks,
		monitor.WithMetrics{Metrics: m},
	)

	executor := withdrawal.NewExecutor(client, signer,
		withdrawal.WithGasBudget{Budget: config.Global.Int64(config.SUI_GAS_BUDGET)},
		withdrawal.WithMetrics{Metrics: m},
	)

	var apiServer api.Server = api.NewHttpServer(
		config.Global.String(config.API_BIND_ADDR),
		config.Global.String(config.PORT),
		executor,
		chain.NewFaucet(endpoints.FaucetURL),
		api.WalletInfo{
			Address:          signer.Address(),
			MonitoredAddress: monitored,
			Network:          config.Global.String(config.SUI_NETWORK),
		},
		api.WithMetrics{Metrics: m, Gatherer: registry},
	)

	slog.Info("starting sui wallet listener",
		slog.String("network", config.Global.String(config.SUI_NETWORK)),
		slog.String("provider", config.Global.String(config.SUI_RPC_PROVIDER)),
		slog.String("subscriber", subscriber.Name()),
		slog.String("monitored", monitored),
	)

	if err := controller.Start(ctx, monitored); err != nil {
		return err
	}

	errorsCh := make(chan error, 1)
	go func() {
		if err := apiServer.Serve(); err != nil {
			errorsCh <- fmt.Errorf("failed to start api server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("shutting down sui wallet listener")
	case runErr = <-errorsCh:
		slog.Error("service encountered critical error", slog.Any("error", runErr))
	case runErr = <-controller.Failures():
		slog.Error("transaction monitoring failed", slog.Any("error", runErr))
	}

	controller.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down api server", slog.Any("error", err))
	}

	return runErr
}

// monitoredAddress returns the configured monitored address. Withdrawals are
// signed by signer and must show up on the monitored subscriptions, so the
// two addresses have to match.
func monitoredAddress(signer *wallet.Signer) (string, error) {
	monitored := config.Global.String(config.MONITORED_WALLET_ADDRESS)
	if monitored != signer.Address() {
		return "", fmt.Errorf("%w: %s is %s, %s derives %s",
			ErrMonitoredWalletMismatch,
			config.MONITORED_WALLET_ADDRESS, monitored,
			config.SUI_PRIVATE_KEY, signer.Address(),
		)
	}
	return monitored, nil
}

// newReportSinks builds the confirmation backend sender and the optional
// broker senders. Returned closers release the broker connections.
func newReportSinks(ctx context.Context, monitored string, m *metrics.Metrics) (confirmation.FanOut, []io.Closer, error) {
	sinks := confirmation.FanOut{
		confirmation.NewHTTPSender(
			config.Global.String(config.BACKEND_CONFIRMATION_URL),
			config.Global.String(config.JAVA_STATUS_ENDPOINT),
			confirmation.WithHTTPMetrics{Metrics: m},
		),
	}
	var closers []io.Closer

	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		producer, err := confirmation.NewKafkaProducer(brokers)
		if err != nil {
			return nil, nil, err
		}
		kafka := confirmation.NewKafkaSender(producer, config.Global.String(config.KAFKA_TOPIC), m)
		sinks = append(sinks, kafka)
		closers = append(closers, kafka)
	}

	if natsUrl := config.Global.String(config.NATS_URL); natsUrl != "" {
		nats, err := confirmation.NewNatsSender(ctx, natsUrl, monitored, m)
		if err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		sinks = append(sinks, nats)
		closers = append(closers, nats)
	}

	return sinks, closers, nil
}

func closeAll(closers []io.Closer) {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c.Close())
	}
	if err := errors.Join(errs...); err != nil {
		slog.Error("failed to close report sinks", slog.Any("error", err))
	}
}
