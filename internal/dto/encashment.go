package dto

type EncashmentSettingsDTO struct {
	Enabled         bool   `json:"enabled" example:"true"`
	StartTime       string `json:"start_time" example:"08:00"`
	EndTime         string `json:"end_time" example:"17:00"`
	AllowedDays     []int  `json:"allowed_days" example:"1,2,3,4,5"`
	OverrideActive  bool   `json:"override_active" example:"false"`
	OverrideExpires string `json:"override_expires,omitempty"`
}

type EncashmentStatusResponseDTO struct {
	WalletKind string                `json:"wallet_kind" example:"PASSIVE"`
	IsAllowed  bool                  `json:"is_allowed" example:"true"`
	Reason     string                `json:"reason" example:"open"`
	Settings   EncashmentSettingsDTO `json:"settings"`
}

type UpdateScheduleRequestDTO struct {
	StartTime   string `json:"start_time" example:"08:00"`
	EndTime     string `json:"end_time" example:"17:00"`
	Enabled     bool   `json:"enabled" example:"true"`
	AllowedDays []int  `json:"allowed_days" example:"1,2,3,4,5"`
}

type ActivateOverrideRequestDTO struct {
	Duration int    `json:"duration" example:"30"`
	Unit     string `json:"unit" example:"minutes"`
}
