package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var (
	addressRegex   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	signatureRegex = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{130}$`)
)

type ChallengeRequest struct {
	Address string `json:"address"`
}

func (c ChallengeRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, validation.Required, validation.Match(addressRegex)),
	)
}

type ConnectRequest struct {
	Address   string `json:"address"`
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
}

func (c ConnectRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&c.Nonce, validation.Required, validation.Length(1, 64)),
		validation.Field(&c.Signature, validation.Required, validation.Match(signatureRegex)),
	)
}

type RegisterSellerRequest struct {
	Name string `json:"name"`
}

func (s RegisterSellerRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, 100)),
	)
}

type AssignItemRequest struct {
	Seller string `json:"seller"`
}

func (a AssignItemRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Seller, validation.Required, validation.Match(addressRegex)),
	)
}
