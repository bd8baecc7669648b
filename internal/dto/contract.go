package dto

import "time"

type ActivateContractRequestDTO struct {
	Amount float64 `json:"amount" example:"25000"`
}

type ActivateContractResponseDTO struct {
	ContractID    int       `json:"contract_id" example:"8"`
	StartDate     time.Time `json:"start_date"`
	MaturityDate  time.Time `json:"maturity_date"`
	CreditBalance float64   `json:"credit_balance" example:"1200.5"`
}

type ContractResponseDTO struct {
	ID             int        `json:"id" example:"8"`
	Principal      float64    `json:"principal" example:"25000"`
	ReturnMultiple float64    `json:"return_multiple" example:"4"`
	Status         string     `json:"status" example:"ACTIVE"`
	TotalPaidOut   float64    `json:"total_paid_out" example:"11250"`
	PaidBoundaries int        `json:"paid_payouts" example:"3"`
	Boundaries     int        `json:"total_payouts" example:"20"`
	StartDate      time.Time  `json:"start_date"`
	MaturityDate   time.Time  `json:"maturity_date"`
	NextPayoutAt   *time.Time `json:"next_payout_at,omitempty"`
	DaysLeft       int        `json:"days_left" example:"51"`
}

type ContractSummaryResponseDTO struct {
	ActiveContracts    int     `json:"active_contracts" example:"2"`
	ActivePrincipal    float64 `json:"active_principal" example:"50000"`
	CompletedContracts int     `json:"completed_contracts" example:"1"`
	TotalPayouts       float64 `json:"total_payouts" example:"100000"`
}

type VoidContractRequestDTO struct {
	Reason string `json:"reason" example:"fraudulent deposit"`
}
