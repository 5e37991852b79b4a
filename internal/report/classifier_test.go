package report

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mantelijo/sui-wallet-listener/internal/chain"
)

var (
	monitored = "0x" + strings.Repeat("a", 64)
	other     = "0x" + strings.Repeat("b", 64)
)

func balanceChange(owner, coinType, amount string) chain.BalanceChange {
	return chain.BalanceChange{
		Owner:    chain.Owner{AddressOwner: owner},
		CoinType: coinType,
		Amount:   amount,
	}
}

func txWith(sender string, status string, changes []chain.BalanceChange, kind chain.TransactionKind) *chain.TransactionBlockResponse {
	return &chain.TransactionBlockResponse{
		Digest: "digest",
		Transaction: &chain.SenderSignedData{
			Data: chain.TransactionData{
				Sender:      sender,
				Transaction: kind,
			},
		},
		Effects: &chain.TransactionEffects{
			Status: chain.ExecutionStatus{Status: status},
		},
		BalanceChanges: changes,
		TimestampMs:    "1700000000000",
	}
}

func transferTo(recipient chain.Argument) chain.Command {
	return chain.Command{
		Name: "TransferObjects",
		TransferObjects: &chain.TransferObjects{
			Objects:   []chain.Argument{chain.OtherArgument{}},
			Recipient: recipient,
		},
	}
}

func TestClassify(t *testing.T) {
	recipientBytes := make([]byte, 32)
	recipientBytes[0] = 0xAB
	recipientBytes[31] = 0xCD
	recipientHex := "0xab" + strings.Repeat("0", 60) + "cd"

	tests := []struct {
		name string
		tx   *chain.TransactionBlockResponse
		want TransactionReport
	}{
		{
			name: "withdrawal with inline recipient",
			tx: txWith(monitored, "success",
				[]chain.BalanceChange{balanceChange(monitored, chain.SuiCoinType, "-1000")},
				chain.TransactionKind{Commands: []chain.Command{
					{Name: "SplitCoins"},
					transferTo(chain.InlineAddress("0xCAFE")),
				}},
			),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusSuccess,
				Type:             TypeWithdrawal,
				SenderAddress:    monitored,
				RecipientAddress: "0xCAFE",
				SuiAmountChange:  big.NewInt(-1000),
				TimestampMs:      "1700000000000",
			},
		},
		{
			name: "withdrawal with input index recipient",
			tx: txWith(monitored, "success", nil,
				chain.TransactionKind{
					Inputs: []chain.CallArg{
						chain.PureInput([]byte{0x01}),
						chain.PureInput(recipientBytes),
					},
					Commands: []chain.Command{transferTo(chain.InputIndex(1))},
				},
			),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusSuccess,
				Type:             TypeWithdrawal,
				SenderAddress:    monitored,
				RecipientAddress: recipientHex,
				SuiAmountChange:  big.NewInt(0),
				TimestampMs:      "1700000000000",
			},
		},
		{
			name: "withdrawal with malformed recipient input",
			tx: txWith(monitored, "success", nil,
				chain.TransactionKind{
					Inputs: []chain.CallArg{
						chain.PureInput(recipientBytes[:20]),
						chain.OtherInput{Type: "object"},
					},
					Commands: []chain.Command{
						transferTo(chain.InputIndex(0)),
						transferTo(chain.InputIndex(1)),
						transferTo(chain.InputIndex(7)),
						transferTo(chain.OtherArgument{}),
					},
				},
			),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusSuccess,
				Type:             TypeWithdrawal,
				SenderAddress:    monitored,
				RecipientAddress: UnknownAddress,
				SuiAmountChange:  big.NewInt(0),
				TimestampMs:      "1700000000000",
			},
		},
		{
			name: "withdrawal keeps scanning after unresolvable transfer",
			tx: txWith(monitored, "success", nil,
				chain.TransactionKind{
					Inputs: []chain.CallArg{chain.OtherInput{Type: "object"}},
					Commands: []chain.Command{
						transferTo(chain.InputIndex(0)),
						transferTo(chain.InlineAddress(other)),
					},
				},
			),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusSuccess,
				Type:             TypeWithdrawal,
				SenderAddress:    monitored,
				RecipientAddress: other,
				SuiAmountChange:  big.NewInt(0),
				TimestampMs:      "1700000000000",
			},
		},
		{
			name: "withdrawal without transfer command",
			tx:   txWith(monitored, "success", nil, chain.TransactionKind{Commands: []chain.Command{{Name: "MoveCall"}}}),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusSuccess,
				Type:             TypeWithdrawal,
				SenderAddress:    monitored,
				RecipientAddress: UnknownAddress,
				SuiAmountChange:  big.NewInt(0),
				TimestampMs:      "1700000000000",
			},
		},
		{
			name: "deposit",
			tx: txWith(other, "success",
				[]chain.BalanceChange{
					balanceChange(other, chain.SuiCoinType, "-2000"),
					balanceChange(monitored, chain.SuiCoinType, "1500"),
				},
				chain.TransactionKind{Commands: []chain.Command{transferTo(chain.InlineAddress(monitored))}},
			),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusSuccess,
				Type:             TypeDeposit,
				SenderAddress:    other,
				RecipientAddress: monitored,
				SuiAmountChange:  big.NewInt(1500),
				TimestampMs:      "1700000000000",
			},
		},
		{
			name: "deposit of a non sui coin",
			tx: txWith(other, "success",
				[]chain.BalanceChange{balanceChange(monitored, "0xdead::usdc::USDC", "10")},
				chain.TransactionKind{},
			),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusSuccess,
				Type:             TypeDeposit,
				SenderAddress:    other,
				RecipientAddress: monitored,
				SuiAmountChange:  big.NewInt(0),
				TimestampMs:      "1700000000000",
			},
		},
		{
			name: "unrelated transaction",
			tx: txWith(other, "success",
				[]chain.BalanceChange{balanceChange(other, chain.SuiCoinType, "-5")},
				chain.TransactionKind{},
			),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusSuccess,
				Type:             TypeUnknown,
				SenderAddress:    other,
				RecipientAddress: monitored,
				SuiAmountChange:  big.NewInt(0),
				TimestampMs:      "1700000000000",
			},
		},
		{
			name: "failed transaction with error",
			tx: func() *chain.TransactionBlockResponse {
				tx := txWith(other, "failure", []chain.BalanceChange{balanceChange(monitored, chain.SuiCoinType, "7")}, chain.TransactionKind{})
				tx.Effects.Status.Error = "InsufficientGas"
				return tx
			}(),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusFailed,
				ErrorMessage:     "InsufficientGas",
				Type:             TypeDeposit,
				SenderAddress:    other,
				RecipientAddress: monitored,
				SuiAmountChange:  big.NewInt(7),
				TimestampMs:      "1700000000000",
			},
		},
		{
			name: "failed transaction without error",
			tx:   txWith(other, "failure", nil, chain.TransactionKind{}),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusFailed,
				ErrorMessage:     DefaultFailureMessage,
				Type:             TypeUnknown,
				SenderAddress:    other,
				RecipientAddress: monitored,
				SuiAmountChange:  big.NewInt(0),
				TimestampMs:      "1700000000000",
			},
		},
		{
			name: "missing fields fall back to defaults",
			tx:   &chain.TransactionBlockResponse{Digest: "digest"},
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusUnknown,
				Type:             TypeUnknown,
				SenderAddress:    UnknownAddress,
				RecipientAddress: monitored,
				SuiAmountChange:  big.NewInt(0),
				TimestampMs:      "0",
			},
		},
		{
			name: "unexpected status",
			tx:   txWith(other, "pending", nil, chain.TransactionKind{}),
			want: TransactionReport{
				Digest:           "digest",
				Status:           StatusUnknown,
				Type:             TypeUnknown,
				SenderAddress:    other,
				RecipientAddress: monitored,
				SuiAmountChange:  big.NewInt(0),
				TimestampMs:      "1700000000000",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.tx, monitored)
			assertReport(t, &tt.want, got)
		})
	}
}

func TestClassifyAmountFirstMatch(t *testing.T) {
	tx := txWith(other, "success",
		[]chain.BalanceChange{
			balanceChange(monitored, chain.SuiCoinType, "-500"),
			balanceChange(monitored, "0xdead::usdc::USDC", "10"),
			balanceChange(monitored, chain.SuiCoinType, "300"),
		},
		chain.TransactionKind{},
	)

	got := Classify(tx, monitored)
	assert.Equal(t, "-500", got.SuiAmountChange.String())
}

func TestClassifyUnparsableAmount(t *testing.T) {
	tx := txWith(other, "success",
		[]chain.BalanceChange{balanceChange(monitored, chain.SuiCoinType, "lots")},
		chain.TransactionKind{},
	)

	got := Classify(tx, monitored)
	assert.Equal(t, "0", got.SuiAmountChange.String())
	assert.Equal(t, TypeDeposit, got.Type)
}

func TestClassifyConsensusOwnedBalance(t *testing.T) {
	raw := `{
		"digest": "digest",
		"transaction": {"data": {"sender": "` + other + `", "transaction": {"kind": "ProgrammableTransaction", "inputs": [], "transactions": []}}},
		"effects": {"status": {"status": "success"}},
		"balanceChanges": [
			{"owner": {"ConsensusAddressOwner": {"owner": "` + monitored + `", "start_version": 3}}, "coinType": "0x2::sui::SUI", "amount": "1000"}
		],
		"timestampMs": "1"
	}`

	tx := &chain.TransactionBlockResponse{}
	require.NoError(t, json.Unmarshal([]byte(raw), tx))

	got := Classify(tx, monitored)
	assert.Equal(t, TypeUnknown, got.Type)
	assert.Equal(t, "0", got.SuiAmountChange.String())
}

func TestClassifyIsPure(t *testing.T) {
	tx := txWith(monitored, "success",
		[]chain.BalanceChange{balanceChange(monitored, chain.SuiCoinType, "-42")},
		chain.TransactionKind{Commands: []chain.Command{transferTo(chain.InlineAddress(other))}},
	)

	first := Classify(tx, monitored)
	second := Classify(tx, monitored)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestClassifyDecodedResponse(t *testing.T) {
	recipient := "0x" + strings.Repeat("c", 64)
	raw := `{
		"digest": "3Ltg8gYBM7b2QzwYGZzGZxS4VeFPV1YQ3PqNfF4Fhcmq",
		"transaction": {
			"data": {
				"messageVersion": "v1",
				"sender": "` + monitored + `",
				"transaction": {
					"kind": "ProgrammableTransaction",
					"inputs": [
						{"type": "pure", "valueType": "u64", "value": "1000"},
						{"type": "pure", "valueType": "address", "value": "` + recipient + `"}
					],
					"transactions": [
						{"SplitCoins": ["GasCoin", [{"Input": 0}]]},
						{"TransferObjects": [[{"NestedResult": [0, 0]}], {"Input": 1}]}
					]
				}
			}
		},
		"effects": {"status": {"status": "success"}},
		"balanceChanges": [
			{"owner": {"AddressOwner": "` + monitored + `"}, "coinType": "0x2::sui::SUI", "amount": "-1002000"},
			{"owner": {"AddressOwner": "` + recipient + `"}, "coinType": "0x2::sui::SUI", "amount": "1000"}
		],
		"timestampMs": "1718000000000"
	}`

	tx := &chain.TransactionBlockResponse{}
	require.NoError(t, json.Unmarshal([]byte(raw), tx))

	got := Classify(tx, monitored)
	assert.Equal(t, TypeWithdrawal, got.Type)
	assert.Equal(t, StatusSuccess, got.Status)
	assert.Equal(t, recipient, got.RecipientAddress)
	assert.Equal(t, "-1002000", got.SuiAmountChange.String())
	assert.Equal(t, "1718000000000", got.TimestampMs)
}

func TestReportJSON(t *testing.T) {
	r := &TransactionReport{
		Digest:           "digest",
		Status:           StatusSuccess,
		Type:             TypeDeposit,
		SenderAddress:    other,
		RecipientAddress: monitored,
		SuiAmountChange:  big.NewInt(-42),
		TimestampMs:      "0",
	}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"suiTransactionDigest": "digest",
		"status": "SUCCESS",
		"type": "deposit",
		"senderAddress": "`+other+`",
		"recipientAddress": "`+monitored+`",
		"suiAmountChange": -42,
		"timestampMs": "0"
	}`, string(b))
}

func TestFormatSui(t *testing.T) {
	assert.Equal(t, "1.5", FormatSui(big.NewInt(1_500_000_000)))
	assert.Equal(t, "-2", FormatSui(big.NewInt(-2_000_000_000)))
	assert.Equal(t, "0", FormatSui(nil))
}

func assertReport(t *testing.T, want, got *TransactionReport) {
	t.Helper()
	assert.Equal(t, want.Digest, got.Digest)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.ErrorMessage, got.ErrorMessage)
	assert.Equal(t, want.Type, got.Type)
	assert.Equal(t, want.SenderAddress, got.SenderAddress)
	assert.Equal(t, want.RecipientAddress, got.RecipientAddress)
	assert.Equal(t, want.SuiAmountChange.String(), got.SuiAmountChange.String())
	assert.Equal(t, want.TimestampMs, got.TimestampMs)
}
