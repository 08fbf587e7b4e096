package payload

import (
	"regexp"

	"storefront/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// accepts "0.0001", ".5", "1", optionally followed by "ETH" in any case
var priceRegex = regexp.MustCompile(`^\s*(\d+(\.\d*)?|\.\d+)\s*(?i:eth)?\s*$`)

type ItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
}

func (i ItemRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.Description, validation.Length(0, 1000)),
		validation.Field(&i.Price, validation.Required, validation.Match(priceRegex)),
		validation.Field(&i.ImageURL, is.URL, validation.Length(0, 500)),
	)
}

func (i ItemRequest) ToInput() core.ItemInput {
	return core.ItemInput{
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		ImageURL:    i.ImageURL,
	}
}
