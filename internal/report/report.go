// Package report turns resolved Sui transactions into the status payload
// delivered to the confirmation backend.
package report

import (
	"math/big"
)

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
	StatusUnknown Status = "UNKNOWN"
)

type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
	TypeUnknown    Type = "unknown"
)

const (
	// UnknownAddress marks a sender or recipient that could not be resolved.
	UnknownAddress = "unknown"

	DefaultFailureMessage = "Transaction failed with no specific error message."
)

// TransactionReport is the payload posted to the confirmation backend. JSON
// field names are part of the backend contract.
type TransactionReport struct {
	Digest string `json:"suiTransactionDigest"`
	Status Status `json:"status"`
	// ErrorMessage is set only for failed transactions.
	ErrorMessage     string `json:"errorMessage,omitempty"`
	Type             Type   `json:"type"`
	SenderAddress    string `json:"senderAddress"`
	RecipientAddress string `json:"recipientAddress"`
	// SuiAmountChange is the signed balance change of the monitored address in
	// MIST.
	SuiAmountChange *big.Int `json:"suiAmountChange"`
	TimestampMs     string   `json:"timestampMs"`
}
