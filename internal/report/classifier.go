package report

import (
	"math/big"

	"github.com/Mantelijo/sui-wallet-listener/internal/chain"
)

// Classify builds the report of tx as seen from monitoredAddress. It has no
// side effects.
//
// A transaction sent by the monitored address is a withdrawal and its
// recipient is taken from the first resolvable TransferObjects command.
// Otherwise a transaction that changes a balance of the monitored address is
// a deposit. The amount is the first SUI balance change owned by the
// monitored address; multiple matching changes are not summed.
func Classify(tx *chain.TransactionBlockResponse, monitoredAddress string) *TransactionReport {
	r := &TransactionReport{
		Digest:           tx.Digest,
		Status:           StatusUnknown,
		Type:             TypeUnknown,
		SenderAddress:    tx.Sender(),
		RecipientAddress: monitoredAddress,
		SuiAmountChange:  suiAmountChange(tx.BalanceChanges, monitoredAddress),
		TimestampMs:      tx.TimestampMs,
	}
	if r.SenderAddress == "" {
		r.SenderAddress = UnknownAddress
	}
	if r.TimestampMs == "" {
		r.TimestampMs = "0"
	}

	if tx.Effects != nil {
		switch tx.Effects.Status.Status {
		case chain.ExecutionStatusSuccess:
			r.Status = StatusSuccess
		case chain.ExecutionStatusFailure:
			r.Status = StatusFailed
			r.ErrorMessage = tx.Effects.Status.Error
			if r.ErrorMessage == "" {
				r.ErrorMessage = DefaultFailureMessage
			}
		}
	}

	switch {
	case r.SenderAddress == monitoredAddress:
		r.Type = TypeWithdrawal
		r.RecipientAddress = withdrawalRecipient(tx)
	case ownsBalanceChange(tx.BalanceChanges, monitoredAddress):
		r.Type = TypeDeposit
	}

	return r
}

// withdrawalRecipient scans TransferObjects commands in order and returns the
// first recipient that resolves to an address.
func withdrawalRecipient(tx *chain.TransactionBlockResponse) string {
	if tx.Transaction == nil {
		return UnknownAddress
	}
	kind := tx.Transaction.Data.Transaction

	for _, cmd := range kind.Commands {
		if cmd.TransferObjects == nil {
			continue
		}
		switch arg := cmd.TransferObjects.Recipient.(type) {
		case chain.InlineAddress:
			return string(arg)
		case chain.InputIndex:
			if int(arg) >= len(kind.Inputs) {
				continue
			}
			pure, ok := kind.Inputs[arg].(chain.PureInput)
			if !ok {
				continue
			}
			if address, err := chain.AddressFromBytes(pure); err == nil {
				return address
			}
		}
	}
	return UnknownAddress
}

func ownsBalanceChange(changes []chain.BalanceChange, address string) bool {
	for _, c := range changes {
		if c.Owner.AddressOwner == address {
			return true
		}
	}
	return false
}

func suiAmountChange(changes []chain.BalanceChange, address string) *big.Int {
	for _, c := range changes {
		if c.Owner.AddressOwner != address || c.CoinType != chain.SuiCoinType {
			continue
		}
		amount, ok := new(big.Int).SetString(c.Amount, 10)
		if !ok {
			return big.NewInt(0)
		}
		return amount
	}
	return big.NewInt(0)
}

var mistPerSui = new(big.Float).SetInt64(chain.MistPerSui)

// FormatSui renders an amount of MIST in SUI, for logs.
func FormatSui(mist *big.Int) string {
	if mist == nil {
		return "0"
	}
	f := new(big.Float).SetInt(mist)
	return f.Quo(f, mistPerSui).Text('f', -1)
}
