package dto

import "time"

type InitiatePaymentRequestDTO struct {
	UserID        string `json:"userId" validate:"required" example:"alice"`
	ContactHandle string `json:"contactHandle" validate:"required,msisdn" example:"0712345678"`
	PlanID        string `json:"planId" example:"basic"`
}

// SettlementResponseDTO is returned when a payment completed and words were
// credited.
type SettlementResponseDTO struct {
	CorrelationID string `json:"correlationId" example:"ws_CO_123"`
	Reference     string `json:"reference" example:"RKT1XYZ"`
	WordsAdded    int64  `json:"wordsAdded" example:"100"`
	NewBalance    int64  `json:"newBalance" example:"100"`
}

type PaymentStateResponseDTO struct {
	CorrelationID string `json:"correlationId" example:"ws_CO_123"`
	Status        string `json:"status" example:"pending"`
	Duplicate     bool   `json:"duplicate,omitempty"`
}

type PaymentStatusResponseDTO struct {
	CorrelationID string    `json:"correlationId" example:"ws_CO_123"`
	Status        string    `json:"status" example:"completed"`
	Reference     *string   `json:"reference" example:"RKT1XYZ"`
	Amount        int64     `json:"amount" example:"20"`
	Plan          string    `json:"plan" example:"basic"`
	Timestamp     time.Time `json:"timestamp" example:"2024-12-09T16:09:57+03:00"`
}

type PaymentHistoryItemDTO struct {
	ID            string    `json:"id" example:"7f0c2f7e-4b1e-4a55-9d7a-0d2d4b8f2c11"`
	Amount        int64     `json:"amount" example:"20"`
	Plan          string    `json:"plan" example:"basic"`
	Status        string    `json:"status" example:"completed"`
	Reference     *string   `json:"reference,omitempty" example:"RKT1XYZ"`
	CorrelationID *string   `json:"correlationId,omitempty" example:"ws_CO_123"`
	CreatedAt     time.Time `json:"createdAt" example:"2024-12-09T16:09:57+03:00"`
}

type PlanDTO struct {
	ID          string `json:"id" example:"basic"`
	Price       int64  `json:"price" example:"20"`
	Words       int64  `json:"words" example:"100"`
	Description string `json:"description"`
}
