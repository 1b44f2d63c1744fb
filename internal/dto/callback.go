package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CallbackRequestDTO accepts both the documented field names and the ones
// the provider actually sends. Only the id and reference are typed; the
// failure signals are kept raw so an unexpected type in one of them never
// rejects the whole callback.
type CallbackRequestDTO struct {
	CorrelationID     string          `json:"correlationId"`
	CheckoutRequestID string          `json:"CheckoutRequestID"`
	Reference         string          `json:"reference"`
	Refference        string          `json:"refference"`
	Status            json.RawMessage `json:"status" swaggertype:"string"`
	ResultCode        json.RawMessage `json:"ResultCode" swaggertype:"integer"`
	ResultDesc        json.RawMessage `json:"ResultDesc" swaggertype:"string"`
}

func (c *CallbackRequestDTO) ID() string {
	if c.CorrelationID != "" {
		return c.CorrelationID
	}
	return c.CheckoutRequestID
}

func (c *CallbackRequestDTO) Ref() string {
	if c.Reference != "" {
		return c.Reference
	}
	return c.Refference
}

// Failed reports whether the provider says the payment did not go through.
func (c *CallbackRequestDTO) Failed() bool {
	switch strings.ToLower(strings.TrimSpace(rawString(c.Status))) {
	case "failed", "cancelled", "canceled":
		return true
	}
	code, ok := rawCode(c.ResultCode)
	return ok && code != 0
}

func (c *CallbackRequestDTO) Reason() string {
	if desc := rawString(c.ResultDesc); desc != "" {
		return desc
	}
	return rawString(c.Status)
}

// rawString returns the value when it is a JSON string and "" otherwise.
func rawString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// rawCode reads a result code sent either as a number or as a numeric string.
func rawCode(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if code, err := n.Int64(); err == nil {
			return code, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
		return 0, false
	}
	if code, err := strconv.ParseInt(strings.TrimSpace(rawString(raw)), 10, 64); err == nil {
		return code, true
	}
	return 0, false
}
