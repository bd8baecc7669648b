package dto

import "time"

type AdminSummaryResponseDTO struct {
	Users              int     `json:"users" example:"120"`
	ActiveContracts    int     `json:"active_contracts" example:"34"`
	PrincipalInForce   float64 `json:"principal_in_force" example:"850000"`
	CompletedContracts int     `json:"completed_contracts" example:"11"`
	PendingWithdrawals int     `json:"pending_withdrawals" example:"6"`
	TotalPaidOut       float64 `json:"total_paid_out" example:"412500"`
}

type AuditEntryResponseDTO struct {
	ID        int       `json:"id" example:"3"`
	ActorID   int       `json:"actor_id" example:"1"`
	Action    string    `json:"action" example:"encashment.PASSIVE.override.on"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
