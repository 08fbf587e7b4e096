package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

const maxPayloadBytes = 1 << 20

// Decoder reads a JSON body into object and validates it when object knows how.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	body := http.MaxBytesReader(nil, r.Body, maxPayloadBytes)
	defer func() {
		errClose := body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
