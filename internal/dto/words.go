package dto

type ConsumeWordsRequestDTO struct {
	UserID string `json:"userId" validate:"required" example:"alice"`
	Words  int64  `json:"words" example:"20"`
}

type ConsumeWordsResponseDTO struct {
	WordsUsed      int64 `json:"wordsUsed" example:"20"`
	WordsRemaining int64 `json:"wordsRemaining" example:"30"`
}

type InsufficientWordsResponseDTO struct {
	Error     string `json:"error" example:"Insufficient words"`
	Requested int64  `json:"requested" example:"40"`
	Available int64  `json:"available" example:"30"`
}
