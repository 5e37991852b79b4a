package chain

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// TransactionBlockResponse is the subset of sui_getTransactionBlock and
// sui_executeTransactionBlock results used by the listener.
type TransactionBlockResponse struct {
	Digest         string              `json:"digest"`
	Transaction    *SenderSignedData   `json:"transaction,omitempty"`
	Effects        *TransactionEffects `json:"effects,omitempty"`
	BalanceChanges []BalanceChange     `json:"balanceChanges,omitempty"`
	TimestampMs    string              `json:"timestampMs,omitempty"`
	Checkpoint     string              `json:"checkpoint,omitempty"`
}

// Sender returns the transaction sender or an empty string when the
// transaction input was not requested.
func (r *TransactionBlockResponse) Sender() string {
	if r == nil || r.Transaction == nil {
		return ""
	}
	return r.Transaction.Data.Sender
}

type SenderSignedData struct {
	Data         TransactionData `json:"data"`
	TxSignatures []string        `json:"txSignatures,omitempty"`
}

type TransactionData struct {
	MessageVersion string          `json:"messageVersion,omitempty"`
	Sender         string          `json:"sender"`
	Transaction    TransactionKind `json:"transaction"`
}

// TransactionKind holds the programmable transaction of a block. Inputs and
// commands are decoded into tagged variants once, when the response is
// parsed.
type TransactionKind struct {
	Kind     string
	Inputs   []CallArg
	Commands []Command
}

func (k *TransactionKind) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind         string            `json:"kind"`
		Inputs       []json.RawMessage `json:"inputs"`
		Transactions []json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	k.Kind = raw.Kind
	k.Inputs = make([]CallArg, 0, len(raw.Inputs))
	for _, in := range raw.Inputs {
		k.Inputs = append(k.Inputs, decodeCallArg(in))
	}
	k.Commands = make([]Command, 0, len(raw.Transactions))
	for _, tx := range raw.Transactions {
		cmd, err := decodeCommand(tx)
		if err != nil {
			return err
		}
		k.Commands = append(k.Commands, cmd)
	}
	return nil
}

// CallArg is a resolved transaction input: PureInput or OtherInput.
type CallArg interface {
	isCallArg()
}

// PureInput holds the raw bytes of a pure input value.
type PureInput []byte

// OtherInput is any input that is not a pure value with known bytes, for
// example an object reference.
type OtherInput struct {
	Type string
}

func (PureInput) isCallArg()  {}
func (OtherInput) isCallArg() {}

func decodeCallArg(data json.RawMessage) CallArg {
	var in struct {
		Type      string          `json:"type"`
		ValueType string          `json:"valueType"`
		Value     json.RawMessage `json:"value"`
		Pure      json.RawMessage `json:"Pure"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return OtherInput{}
	}

	if len(in.Pure) > 0 {
		if b, ok := byteArray(in.Pure); ok {
			return PureInput(b)
		}
		return OtherInput{Type: "pure"}
	}

	if in.Type != "pure" {
		return OtherInput{Type: in.Type}
	}

	if b, ok := byteArray(in.Value); ok {
		return PureInput(b)
	}
	if in.ValueType == "address" {
		var s string
		if err := json.Unmarshal(in.Value, &s); err == nil {
			if b, err := hex.DecodeString(strings.TrimPrefix(s, "0x")); err == nil {
				return PureInput(b)
			}
		}
	}
	return OtherInput{Type: in.Type}
}

// byteArray decodes a JSON array of numbers in the 0-255 range.
func byteArray(data json.RawMessage) ([]byte, bool) {
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return nil, false
	}
	b := make([]byte, len(nums))
	for i, n := range nums {
		if n < 0 || n > 255 {
			return nil, false
		}
		b[i] = byte(n)
	}
	return b, true
}

// Command is a single programmable transaction command. Only TransferObjects
// is decoded further, every other command keeps just its name.
type Command struct {
	Name            string
	TransferObjects *TransferObjects
}

const transferObjectsCommand = "TransferObjects"

type TransferObjects struct {
	Objects   []Argument
	Recipient Argument
}

func decodeCommand(data json.RawMessage) (Command, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Commands rendered as bare strings carry no arguments.
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return Command{}, fmt.Errorf("decoding transaction command: %w", err)
		}
		return Command{Name: name}, nil
	}

	for name, body := range fields {
		cmd := Command{Name: name}
		if name != transferObjectsCommand {
			return cmd, nil
		}

		// Malformed transfers are kept so the classifier skips them.
		malformed := &TransferObjects{Recipient: OtherArgument{}}

		var parts []json.RawMessage
		if err := json.Unmarshal(body, &parts); err != nil || len(parts) != 2 {
			cmd.TransferObjects = malformed
			return cmd, nil
		}

		var objects []json.RawMessage
		if err := json.Unmarshal(parts[0], &objects); err != nil {
			cmd.TransferObjects = malformed
			return cmd, nil
		}
		to := &TransferObjects{Recipient: decodeArgument(parts[1])}
		for _, o := range objects {
			to.Objects = append(to.Objects, decodeArgument(o))
		}
		cmd.TransferObjects = to
		return cmd, nil
	}

	return Command{}, nil
}

// Argument is a command argument: InlineAddress, InputIndex or OtherArgument.
type Argument interface {
	isArgument()
}

// InlineAddress is a recipient given directly as an address string.
type InlineAddress string

// InputIndex references an entry of the transaction inputs.
type InputIndex uint16

// OtherArgument covers GasCoin, Result and NestedResult references.
type OtherArgument struct{}

func (InlineAddress) isArgument() {}
func (InputIndex) isArgument()    {}
func (OtherArgument) isArgument() {}

func decodeArgument(data json.RawMessage) Argument {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "GasCoin" {
			return OtherArgument{}
		}
		return InlineAddress(s)
	}

	var ref struct {
		Input *uint16 `json:"Input"`
	}
	if err := json.Unmarshal(data, &ref); err == nil && ref.Input != nil {
		return InputIndex(*ref.Input)
	}
	return OtherArgument{}
}

type TransactionEffects struct {
	MessageVersion    string          `json:"messageVersion,omitempty"`
	Status            ExecutionStatus `json:"status"`
	TransactionDigest string          `json:"transactionDigest"`
}

type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	ExecutionStatusSuccess = "success"
	ExecutionStatusFailure = "failure"
)

type BalanceChange struct {
	Owner    Owner  `json:"owner"`
	CoinType string `json:"coinType"`
	Amount   string `json:"amount"`
}

// Owner is the owner of an object or balance. At most one of the fields is
// set.
type Owner struct {
	AddressOwner string
	ObjectOwner  string
	Shared       bool
	Immutable    bool
}

func (o *Owner) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Immutable = s == "Immutable"
		return nil
	}

	var raw struct {
		AddressOwner string          `json:"AddressOwner"`
		ObjectOwner  string          `json:"ObjectOwner"`
		Shared       json.RawMessage `json:"Shared"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding owner: %w", err)
	}
	o.AddressOwner = raw.AddressOwner
	o.ObjectOwner = raw.ObjectOwner
	o.Shared = len(raw.Shared) > 0
	return nil
}

func (o Owner) MarshalJSON() ([]byte, error) {
	switch {
	case o.AddressOwner != "":
		return json.Marshal(map[string]string{"AddressOwner": o.AddressOwner})
	case o.ObjectOwner != "":
		return json.Marshal(map[string]string{"ObjectOwner": o.ObjectOwner})
	case o.Shared:
		return json.Marshal(map[string]struct{}{"Shared": {}})
	default:
		return json.Marshal("Immutable")
	}
}

// TransactionBlockResponseOptions selects the fields returned by the node.
type TransactionBlockResponseOptions struct {
	ShowInput          bool `json:"showInput,omitempty"`
	ShowRawInput       bool `json:"showRawInput,omitempty"`
	ShowEffects        bool `json:"showEffects,omitempty"`
	ShowEvents         bool `json:"showEvents,omitempty"`
	ShowObjectChanges  bool `json:"showObjectChanges,omitempty"`
	ShowBalanceChanges bool `json:"showBalanceChanges,omitempty"`
}

type Coin struct {
	CoinType     string `json:"coinType"`
	CoinObjectID string `json:"coinObjectId"`
	Version      string `json:"version"`
	Digest       string `json:"digest"`
	Balance      string `json:"balance"`
}

type CoinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

// TransactionBytes is an unsigned transaction built by the node.
type TransactionBytes struct {
	TxBytes string `json:"txBytes"`
}

type TransactionBlockPage struct {
	Data        []TransactionBlockResponse `json:"data"`
	NextCursor  *string                    `json:"nextCursor"`
	HasNextPage bool                       `json:"hasNextPage"`
}

// PaySuiRequest describes an unsafe_paySui call. The first input coin pays
// for gas, all inputs are merged into it and each amount is split off and
// sent to the matching recipient.
type PaySuiRequest struct {
	Signer     string
	InputCoins []string
	Recipients []string
	Amounts    []string
	GasBudget  string
}
