package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		SUI_NETWORK:              "",
		SUI_RPC_PROVIDER:         "",
		SUI_RPC_URL:              "",
		SUI_WS_URL:               "",
		SHINAMI_NODE_ACCESS_KEY:  "node_access_key",
		SUI_PRIVATE_KEY:          "suiprivkey1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq",
		MONITORED_WALLET_ADDRESS: "0xA11CE",
		BACKEND_CONFIRMATION_URL: "",
		JAVA_STATUS_ENDPOINT:     "",
		PORT:                     "",
		API_BIND_ADDR:            "",
		SUI_SUBSCRIPTION_MODE:    "",
		SUI_POLL_INTERVAL:        "",
		SUI_GAS_BUDGET:           "",
		KAFKA_BROKERS:            "",
		KAFKA_TOPIC:              "",
		NATS_URL:                 "",
		LOG_LEVEL:                "",
	} {
		t.Setenv(k, v)
	}
}

func TestLoadRequiredEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequiredEnv(t)

		require.NoError(t, LoadRequiredEnv())

		assert.Equal(t, NetworkDevnet, Global.String(SUI_NETWORK))
		assert.Equal(t, "http://localhost:8080", Global.String(BACKEND_CONFIRMATION_URL))
		assert.Equal(t, "/transaction-status", Global.String(JAVA_STATUS_ENDPOINT))
		assert.Equal(t, "3000", Global.String(PORT))
		assert.Equal(t, "0.0.0.0", Global.String(API_BIND_ADDR))
		assert.Equal(t, ModeWebsocket, Global.String(SUI_SUBSCRIPTION_MODE))
		assert.Equal(t, 5*time.Second, Global.Duration(SUI_POLL_INTERVAL))
		assert.Equal(t, int64(10_000_000), Global.Int64(SUI_GAS_BUDGET))
		assert.Equal(t, "sui-transaction-reports", Global.String(KAFKA_TOPIC))
		assert.Equal(t, slog.LevelInfo, LogLevel())
		assert.Nil(t, KafkaBrokers())

		assert.Equal(t, "0x"+strings.Repeat("0", 59)+"a11ce", Global.String(MONITORED_WALLET_ADDRESS))
	})

	t.Run("missing private key", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv(SUI_PRIVATE_KEY, " ")

		err := LoadRequiredEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), SUI_PRIVATE_KEY)
	})

	t.Run("missing node access key", func(t *testing.T) {
		for _, provider := range []string{"", ProviderPublic, ProviderShinami} {
			setRequiredEnv(t)
			t.Setenv(SUI_RPC_PROVIDER, provider)
			t.Setenv(SHINAMI_NODE_ACCESS_KEY, "")

			err := LoadRequiredEnv()
			require.Error(t, err, provider)
			assert.Contains(t, err.Error(), SHINAMI_NODE_ACCESS_KEY)
		}
	})

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "unknown network", key: SUI_NETWORK, value: "betanet", wantErr: SUI_NETWORK},
		{name: "unknown provider", key: SUI_RPC_PROVIDER, value: "infura", wantErr: SUI_RPC_PROVIDER},
		{name: "unknown mode", key: SUI_SUBSCRIPTION_MODE, value: "grpc", wantErr: SUI_SUBSCRIPTION_MODE},
		{name: "invalid address", key: MONITORED_WALLET_ADDRESS, value: "0xzz", wantErr: MONITORED_WALLET_ADDRESS},
		{name: "invalid poll interval", key: SUI_POLL_INTERVAL, value: "soon", wantErr: SUI_POLL_INTERVAL},
		{name: "invalid gas budget", key: SUI_GAS_BUDGET, value: "-1", wantErr: SUI_GAS_BUDGET},
		{name: "invalid log level", key: LOG_LEVEL, value: "loud", wantErr: LOG_LEVEL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			err := LoadRequiredEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("kafka brokers and log level", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv(KAFKA_BROKERS, "kafka-1:9092, kafka-2:9092,")
		t.Setenv(LOG_LEVEL, "debug")

		require.NoError(t, LoadRequiredEnv())
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, KafkaBrokers())
		assert.Equal(t, slog.LevelDebug, LogLevel())
	})
}

func TestResolveEndpoints(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Endpoints
		wantErr bool
	}{
		{
			name: "public testnet",
			env:  map[string]string{SUI_NETWORK: NetworkTestnet},
			want: Endpoints{
				RPCURL:    "https://fullnode.testnet.sui.io:443",
				WSURL:     "wss://fullnode.testnet.sui.io:443",
				FaucetURL: "https://faucet.testnet.sui.io/v2/gas",
				Headers:   map[string]string{},
			},
		},
		{
			name: "public mainnet has no faucet",
			env:  map[string]string{SUI_NETWORK: NetworkMainnet},
			want: Endpoints{
				RPCURL:  "https://fullnode.mainnet.sui.io:443",
				WSURL:   "wss://fullnode.mainnet.sui.io:443",
				Headers: map[string]string{},
			},
		},
		{
			name: "localnet",
			env:  map[string]string{SUI_NETWORK: NetworkLocalnet},
			want: Endpoints{
				RPCURL:    "http://127.0.0.1:9000",
				WSURL:     "ws://127.0.0.1:9000",
				FaucetURL: "http://127.0.0.1:9123/v2/gas",
				Headers:   map[string]string{},
			},
		},
		{
			name: "shinami testnet",
			env: map[string]string{
				SUI_NETWORK:             NetworkTestnet,
				SUI_RPC_PROVIDER:        ProviderShinami,
				SHINAMI_NODE_ACCESS_KEY: "sui_testnet_key",
			},
			want: Endpoints{
				RPCURL:    "https://api.us1.shinami.com/sui/node/v1",
				WSURL:     "wss://api.us1.shinami.com/sui/node/v1/sui_testnet_key",
				FaucetURL: "https://faucet.testnet.sui.io/v2/gas",
				Headers:   map[string]string{"X-Api-Key": "sui_testnet_key"},
			},
		},
		{
			name: "shinami devnet is not served",
			env: map[string]string{
				SUI_NETWORK:             NetworkDevnet,
				SUI_RPC_PROVIDER:        ProviderShinami,
				SHINAMI_NODE_ACCESS_KEY: "key",
			},
			wantErr: true,
		},
		{
			name: "explicit urls override",
			env: map[string]string{
				SUI_NETWORK: NetworkDevnet,
				SUI_RPC_URL: "http://node:9000",
				SUI_WS_URL:  "ws://node:9001",
			},
			want: Endpoints{
				RPCURL:    "http://node:9000",
				WSURL:     "ws://node:9001",
				FaucetURL: "https://faucet.devnet.sui.io/v2/gas",
				Headers:   map[string]string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := LoadRequiredEnv()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			got, err := ResolveEndpoints()
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}
