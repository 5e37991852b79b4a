package config

// Environment variables used by the application
const (
	// Sui network: devnet, testnet, mainnet or localnet. Default is devnet
	SUI_NETWORK = "SUI_NETWORK"

	// Node provider used to derive the rpc urls: public or shinami. Default
	// is public
	SUI_RPC_PROVIDER = "SUI_RPC_PROVIDER"

	// Explicit http rpc url, overrides the provider url
	SUI_RPC_URL = "SUI_RPC_URL"

	// Explicit websocket rpc url, overrides the provider url
	SUI_WS_URL = "SUI_WS_URL"

	// Shinami node service access key
	SHINAMI_NODE_ACCESS_KEY = "SHINAMI_NODE_ACCESS_KEY"

	// Private key of the wallet used for withdrawals
	SUI_PRIVATE_KEY = "SUI_PRIVATE_KEY"

	// Address whose transactions are monitored
	MONITORED_WALLET_ADDRESS = "MONITORED_WALLET_ADDRESS"

	// Base url of the confirmation backend. Default is http://localhost:8080
	BACKEND_CONFIRMATION_URL = "BACKEND_CONFIRMATION_URL"

	// Path of the backend transaction status endpoint. Default is
	// /transaction-status
	JAVA_STATUS_ENDPOINT = "JAVA_STATUS_ENDPOINT"

	// Http api port. Default is 3000
	PORT = "PORT"

	// Http api bind address. Default is 0.0.0.0
	API_BIND_ADDR = "API_BIND_ADDR"

	// websocket or polling. Default is websocket
	SUI_SUBSCRIPTION_MODE = "SUI_SUBSCRIPTION_MODE"

	// Polling interval, e.g. 5s
	SUI_POLL_INTERVAL = "SUI_POLL_INTERVAL"

	// Gas budget of withdrawals in MIST
	SUI_GAS_BUDGET = "SUI_GAS_BUDGET"

	// Comma separated kafka brokers. Kafka sink is disabled when empty
	KAFKA_BROKERS = "KAFKA_BROKERS"

	KAFKA_TOPIC = "KAFKA_TOPIC"

	// NATS url. NATS sink is disabled when empty
	NATS_URL = "NATS_URL"

	// debug, info, warn or error
	LOG_LEVEL = "LOG_LEVEL"
)
