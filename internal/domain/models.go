package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	ReferrerID   *int      `db:"referrer_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// WalletKind is a closed enumeration; switches over it are exhaustive so
// adding or removing a kind is a compile-visible change.
type WalletKind string

const (
	CreditWallet  WalletKind = "CREDIT"
	PassiveWallet WalletKind = "PASSIVE"
)

func (k WalletKind) Valid() bool {
	switch k {
	case CreditWallet, PassiveWallet:
		return true
	}
	return false
}

type Wallet struct {
	ID      int        `db:"id"`
	UserID  int        `db:"user_id"`
	Kind    WalletKind `db:"kind"`
	Balance float64    `db:"balance"`
}

type TransactionType string

const (
	TxDeposit    TransactionType = "DEPOSIT"
	TxActivation TransactionType = "ACTIVATION"
	TxPayout     TransactionType = "PAYOUT"
	TxWithdrawal TransactionType = "WITHDRAWAL"
	TxReferral   TransactionType = "REFERRAL"
)

type TransactionStatus string

const (
	TxPending   TransactionStatus = "PENDING"
	TxCompleted TransactionStatus = "COMPLETED"
	TxFailed    TransactionStatus = "FAILED"
	TxCancelled TransactionStatus = "CANCELLED"
)

type Transaction struct {
	ID          int               `db:"id"`
	UserID      int               `db:"user_id"`
	WalletKind  WalletKind        `db:"wallet_kind"`
	Type        TransactionType   `db:"type"`
	Status      TransactionStatus `db:"status"`
	Amount      float64           `db:"amount"`
	Reference   string            `db:"reference"`
	Description string            `db:"description"`
	CreatedAt   time.Time         `db:"created_at"`
}

type ContractStatus string

const (
	ContractActive    ContractStatus = "ACTIVE"
	ContractCompleted ContractStatus = "COMPLETED"
	ContractVoided    ContractStatus = "VOIDED"
)

type Contract struct {
	ID             int            `db:"id"`
	UserID         int            `db:"user_id"`
	Principal      float64        `db:"principal"`
	ReturnMultiple float64        `db:"return_multiple"`
	CadenceDays    int            `db:"cadence_days"`
	Boundaries     int            `db:"boundaries"`
	PaidBoundaries int            `db:"paid_boundaries"`
	TotalPaidOut   float64        `db:"total_paid_out"`
	Status         ContractStatus `db:"status"`
	VoidReason     string         `db:"void_reason"`
	StartAt        time.Time      `db:"start_at"`
	MaturityAt     time.Time      `db:"maturity_at"`
}

// EncashmentConfig is the withdrawal-window record for one wallet kind.
// Times are minutes since midnight, AllowedDays holds time.Weekday values.
type EncashmentConfig struct {
	ID              int            `db:"id"`
	WalletKind      WalletKind     `db:"wallet_kind"`
	Enabled         bool           `db:"enabled"`
	StartMinute     int            `db:"start_minute"`
	EndMinute       int            `db:"end_minute"`
	AllowedDays     []time.Weekday `db:"allowed_days"`
	OverrideActive  bool           `db:"override_active"`
	OverrideExpires time.Time      `db:"override_expires"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "PENDING"
	WithdrawalCompleted WithdrawalStatus = "COMPLETED"
	WithdrawalCancelled WithdrawalStatus = "CANCELLED"
	WithdrawalRejected  WithdrawalStatus = "REJECTED"
)

type PayoutMethod string

const (
	MethodGCash    PayoutMethod = "GCASH"
	MethodMaya     PayoutMethod = "MAYA"
	MethodBankCard PayoutMethod = "BANK_CARD"
)

func (m PayoutMethod) Valid() bool {
	switch m {
	case MethodGCash, MethodMaya, MethodBankCard:
		return true
	}
	return false
}

type WithdrawalRequest struct {
	ID             int              `db:"id"`
	UserID         int              `db:"user_id"`
	WalletKind     WalletKind       `db:"wallet_kind"`
	Amount         float64          `db:"amount"`
	Fee            float64          `db:"fee"`
	NetAmount      float64          `db:"net_amount"`
	Method         PayoutMethod     `db:"method"`
	AccountDetails string           `db:"account_details"`
	Status         WithdrawalStatus `db:"status"`
	Remarks        string           `db:"remarks"`
	ProcessedBy    *int             `db:"processed_by"`
	ProcessedAt    *time.Time       `db:"processed_at"`
	RequestedAt    time.Time        `db:"requested_at"`
}

type AuditEntry struct {
	ID        int       `db:"id"`
	ActorID   int       `db:"actor_id"`
	Action    string    `db:"action"`
	OldValue  string    `db:"old_value"`
	NewValue  string    `db:"new_value"`
	CreatedAt time.Time `db:"created_at"`
}
