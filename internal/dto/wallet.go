package dto

import "time"

type WalletResponseDTO struct {
	Kind    string  `json:"kind" example:"CREDIT"`
	Balance float64 `json:"balance" example:"500.5"`
}

type TransactionResponseDTO struct {
	ID          int       `json:"id" example:"17"`
	WalletKind  string    `json:"wallet_kind" example:"PASSIVE"`
	Type        string    `json:"type" example:"PAYOUT"`
	Status      string    `json:"status" example:"COMPLETED"`
	Amount      float64   `json:"amount" example:"3750"`
	Reference   string    `json:"reference,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type DepositRequestDTO struct {
	Amount     float64 `json:"amount" example:"25000"`
	ReceiptRef string  `json:"receipt_ref" example:"GC-20250110-991"`
}

type DepositResponseDTO struct {
	ID     int     `json:"id" example:"4"`
	Amount float64 `json:"amount" example:"25000"`
	Status string  `json:"status" example:"PENDING"`
}
