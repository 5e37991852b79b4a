package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/knadh/koanf/v2"

	"github.com/Mantelijo/sui-wallet-listener/internal/chain"
)

const (
	NetworkDevnet   = "devnet"
	NetworkTestnet  = "testnet"
	NetworkMainnet  = "mainnet"
	NetworkLocalnet = "localnet"

	ProviderPublic  = "public"
	ProviderShinami = "shinami"

	ModeWebsocket = "websocket"
	ModePolling   = "polling"
)

var Global = koanf.New(".")

var defaults = map[string]interface{}{
	SUI_NETWORK:              NetworkDevnet,
	SUI_RPC_PROVIDER:         ProviderPublic,
	BACKEND_CONFIRMATION_URL: "http://localhost:8080",
	JAVA_STATUS_ENDPOINT:     "/transaction-status",
	PORT:                     "3000",
	API_BIND_ADDR:            "0.0.0.0",
	SUI_SUBSCRIPTION_MODE:    ModeWebsocket,
	SUI_POLL_INTERVAL:        "5s",
	SUI_GAS_BUDGET:           "10000000",
	KAFKA_TOPIC:              "sui-transaction-reports",
	LOG_LEVEL:                "info",
}

// LoadRequiredEnv loads the environment variables required to run the services.
// An error is returned if any of the required variables are missing in .env or
// env, or hold an unusable value.
func LoadRequiredEnv() error {
	Global = koanf.New(".")

	// Load default values
	Global.Load(confmap.Provider(defaults, "."), nil)

	// .env file is optional, but we still try to load it if it exists.
	err := Global.Load(
		file.Provider(".env"), dotenv.Parser(),
	)
	if err != nil {
		slog.Debug("no .env file loaded", slog.Any("error", err))
	}

	// Empty variables do not shadow defaults.
	err = Global.Load(env.ProviderWithValue("", "", func(key, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return key, value
	}), nil)
	if err != nil {
		slog.Warn("failed to load environment variables", slog.Any("error", err))
	}

	required := []string{
		SUI_NETWORK,
		SHINAMI_NODE_ACCESS_KEY,
		SUI_PRIVATE_KEY,
		MONITORED_WALLET_ADDRESS,
		BACKEND_CONFIRMATION_URL,
		JAVA_STATUS_ENDPOINT,
		API_BIND_ADDR,
		PORT,
	}
	for _, r := range required {
		if strings.TrimSpace(Global.String(r)) == "" {
			return fmt.Errorf("required environment variable %s is missing", r)
		}
	}

	return validate()
}

func validate() error {
	if err := oneOf(SUI_NETWORK, NetworkDevnet, NetworkTestnet, NetworkMainnet, NetworkLocalnet); err != nil {
		return err
	}
	if err := oneOf(SUI_RPC_PROVIDER, ProviderPublic, ProviderShinami); err != nil {
		return err
	}
	if err := oneOf(SUI_SUBSCRIPTION_MODE, ModeWebsocket, ModePolling); err != nil {
		return err
	}

	address, err := chain.NormalizeAddress(Global.String(MONITORED_WALLET_ADDRESS))
	if err != nil {
		return fmt.Errorf("%s: %w", MONITORED_WALLET_ADDRESS, err)
	}
	Global.Set(MONITORED_WALLET_ADDRESS, address)

	if Global.Duration(SUI_POLL_INTERVAL) <= 0 {
		return fmt.Errorf("%s must be a positive duration, got %q", SUI_POLL_INTERVAL, Global.String(SUI_POLL_INTERVAL))
	}
	if Global.Int64(SUI_GAS_BUDGET) <= 0 {
		return fmt.Errorf("%s must be a positive integer, got %q", SUI_GAS_BUDGET, Global.String(SUI_GAS_BUDGET))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(Global.String(LOG_LEVEL))); err != nil {
		return fmt.Errorf("%s: %w", LOG_LEVEL, err)
	}

	if _, err := ResolveEndpoints(); err != nil {
		return err
	}

	return nil
}

func oneOf(key string, allowed ...string) error {
	v := Global.String(key)
	if !slices.Contains(allowed, v) {
		return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), v)
	}
	return nil
}

// LogLevel returns the configured level, info when unset or invalid.
func LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(Global.String(LOG_LEVEL))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// KafkaBrokers returns the configured brokers, nil when the kafka sink is
// disabled.
func KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(Global.String(KAFKA_BROKERS), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Endpoints are the node urls of the configured network and provider.
type Endpoints struct {
	RPCURL string
	WSURL  string
	// FaucetURL is empty on networks without a faucet.
	FaucetURL string
	// Headers are added to every http rpc request.
	Headers map[string]string
}

const shinamiNodeUrl = "api.us1.shinami.com/sui/node/v1"

// ResolveEndpoints derives the node urls from SUI_NETWORK and
// SUI_RPC_PROVIDER. SUI_RPC_URL and SUI_WS_URL override the derived urls.
func ResolveEndpoints() (*Endpoints, error) {
	network := Global.String(SUI_NETWORK)
	e := &Endpoints{Headers: map[string]string{}}

	switch network {
	case NetworkDevnet, NetworkTestnet:
		e.FaucetURL = fmt.Sprintf("https://faucet.%s.sui.io/v2/gas", network)
	case NetworkLocalnet:
		e.FaucetURL = "http://127.0.0.1:9123/v2/gas"
	}

	switch Global.String(SUI_RPC_PROVIDER) {
	case ProviderShinami:
		if network != NetworkMainnet && network != NetworkTestnet {
			return nil, fmt.Errorf("shinami does not serve %s", network)
		}
		key := Global.String(SHINAMI_NODE_ACCESS_KEY)
		e.RPCURL = "https://" + shinamiNodeUrl
		e.WSURL = "wss://" + shinamiNodeUrl + "/" + key
		e.Headers["X-Api-Key"] = key
	default:
		if network == NetworkLocalnet {
			e.RPCURL = "http://127.0.0.1:9000"
			e.WSURL = "ws://127.0.0.1:9000"
		} else {
			e.RPCURL = fmt.Sprintf("https://fullnode.%s.sui.io:443", network)
			e.WSURL = fmt.Sprintf("wss://fullnode.%s.sui.io:443", network)
		}
	}

	if u := Global.String(SUI_RPC_URL); u != "" {
		e.RPCURL = u
	}
	if u := Global.String(SUI_WS_URL); u != "" {
		e.WSURL = u
	}

	return e, nil
}
