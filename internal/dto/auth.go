package dto

import "time"

type RegisterRequestDTO struct {
	Username      string `json:"username" validate:"required,min=3,max=50" example:"alice"`
	PIN           string `json:"pin" validate:"required,pin" example:"1234"`
	ContactHandle string `json:"contactHandle,omitempty" validate:"omitempty,msisdn" example:"0712345678"`
}

type RegisterResponseDTO struct {
	Message  string `json:"message"`
	Username string `json:"username" example:"alice"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required" example:"alice"`
	PIN      string `json:"pin" validate:"required,pin" example:"1234"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type UserResponseDTO struct {
	Username       string    `json:"username" example:"alice"`
	WordsRemaining int64     `json:"wordsRemaining" example:"100"`
	ContactHandle  *string   `json:"contactHandle,omitempty" example:"0712345678"`
	CreatedAt      time.Time `json:"createdAt" example:"2024-12-09T16:09:57+03:00"`
}
