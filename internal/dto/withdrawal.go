package dto

import "time"

type SubmitWithdrawalRequestDTO struct {
	WalletKind     string  `json:"wallet_kind" example:"PASSIVE"`
	Amount         float64 `json:"amount" example:"500"`
	Method         string  `json:"method" example:"GCASH"`
	AccountDetails string  `json:"account_details" example:"09171234567"`
}

type WithdrawalResponseDTO struct {
	ID          int        `json:"id" example:"12"`
	WalletKind  string     `json:"wallet_kind" example:"PASSIVE"`
	Amount      float64    `json:"amount" example:"500"`
	Fee         float64    `json:"fee" example:"50"`
	NetAmount   float64    `json:"net_amount" example:"450"`
	Method      string     `json:"method" example:"GCASH"`
	Status      string     `json:"status" example:"PENDING"`
	Remarks     string     `json:"remarks,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

type ResolveWithdrawalRequestDTO struct {
	Action  string `json:"action" example:"paid"`
	Remarks string `json:"remarks,omitempty"`
}
