package request

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gadget_garage/internal/domain/entities"
)

// Amount accepts both "150.00" and 150 so numeric keyboards on the client can send either.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

type PaymentRequest struct {
	Method      string `json:"method" example:"card"`
	Amount      Amount `json:"amount" swaggertype:"string" example:"150.00"`
	Description string `json:"description" example:"Repair deposit"`
}

func (r PaymentRequest) ToForm() entities.PaymentForm {
	return entities.PaymentForm{Method: r.Method, Amount: string(r.Amount), Description: r.Description}
}
