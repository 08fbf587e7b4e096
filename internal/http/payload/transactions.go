package payload

import (
	"regexp"

	"storefront/internal/core"

	"github.com/jellydator/validation"
)

var (
	hashRegex  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	rawTxRegex = regexp.MustCompile(`^(0x)?[0-9a-fA-F]+$`)

	txKinds = []any{
		string(core.KindBuy),
		string(core.KindRegister),
		string(core.KindCreate),
		string(core.KindUpdate),
		string(core.KindRemove),
		string(core.KindAssign),
	}
)

type TransactionsRequest struct {
	Transactions []string
}

func (t TransactionsRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Transactions, validation.Required, validation.Length(1, 50)),
		validation.Field(&t.Transactions, validation.Each(validation.Match(hashRegex))),
	)
}

// TrackRequest reports a transaction the wallet broadcast itself.
type TrackRequest struct {
	Hash string `json:"hash"`
	Kind string `json:"kind"`
}

func (t TrackRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Hash, validation.Required, validation.Match(hashRegex)),
		validation.Field(&t.Kind, validation.Required, validation.In(txKinds...)),
	)
}

func (t TrackRequest) ToInput() core.TrackInput {
	return core.TrackInput{Kind: core.TxKind(t.Kind)}
}

// RawTransactionRequest carries a signed transaction for the server to relay.
type RawTransactionRequest struct {
	Raw  string `json:"raw"`
	Kind string `json:"kind"`
}

func (t RawTransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Raw, validation.Required, validation.Match(rawTxRegex)),
		validation.Field(&t.Kind, validation.Required, validation.In(txKinds...)),
	)
}

func (t RawTransactionRequest) ToInput() core.TrackInput {
	return core.TrackInput{Kind: core.TxKind(t.Kind)}
}
