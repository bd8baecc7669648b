package encashmentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

// Mon-Fri, 08:00-17:00.
func weekdayConfig() *domain.EncashmentConfig {
	return &domain.EncashmentConfig{
		WalletKind:  domain.CreditWallet,
		Enabled:     true,
		StartMinute: 8 * 60,
		EndMinute:   17 * 60,
		AllowedDays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	}
}

func TestEvaluate(t *testing.T) {
	// 2026-08-24 is a Monday, 2026-08-29 a Saturday.
	monday := func(hour, minute int) time.Time {
		return time.Date(2026, 8, 24, hour, minute, 0, 0, time.UTC)
	}
	saturday := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		mutate         func(cfg *domain.EncashmentConfig)
		now            time.Time
		expectedOpen   bool
		expectedReason string
	}{
		{
			name:           "Weekday inside hours",
			now:            monday(10, 30),
			expectedOpen:   true,
			expectedReason: ReasonOpen,
		},
		{
			name:           "Exactly at window start",
			now:            monday(8, 0),
			expectedOpen:   true,
			expectedReason: ReasonOpen,
		},
		{
			name:           "Exactly at window end",
			now:            monday(17, 0),
			expectedOpen:   true,
			expectedReason: ReasonOpen,
		},
		{
			name:           "One minute past the window",
			now:            monday(17, 1),
			expectedOpen:   false,
			expectedReason: ReasonTimeClosed,
		},
		{
			name:           "Before the window",
			now:            monday(7, 59),
			expectedOpen:   false,
			expectedReason: ReasonTimeClosed,
		},
		{
			name:           "Weekend",
			now:            saturday,
			expectedOpen:   false,
			expectedReason: ReasonDayClosed,
		},
		{
			name: "Disabled closes everything",
			mutate: func(cfg *domain.EncashmentConfig) {
				cfg.Enabled = false
			},
			now:            monday(10, 0),
			expectedOpen:   false,
			expectedReason: ReasonDisabled,
		},
		{
			name: "Override opens a closed day",
			mutate: func(cfg *domain.EncashmentConfig) {
				cfg.OverrideActive = true
				cfg.OverrideExpires = saturday.Add(2 * time.Hour)
			},
			now:            saturday,
			expectedOpen:   true,
			expectedReason: ReasonOverride,
		},
		{
			name: "Override beats disabled",
			mutate: func(cfg *domain.EncashmentConfig) {
				cfg.Enabled = false
				cfg.OverrideActive = true
				cfg.OverrideExpires = monday(23, 0)
			},
			now:            monday(22, 0),
			expectedOpen:   true,
			expectedReason: ReasonOverride,
		},
		{
			name: "Expired override falls back to schedule",
			mutate: func(cfg *domain.EncashmentConfig) {
				cfg.OverrideActive = true
				cfg.OverrideExpires = saturday.Add(-time.Minute)
			},
			now:            saturday,
			expectedOpen:   false,
			expectedReason: ReasonDayClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := weekdayConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			open, reason := Evaluate(cfg, tt.now)
			assert.Equal(t, tt.expectedOpen, open)
			assert.Equal(t, tt.expectedReason, reason)
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"08:00", 480, false},
		{"17:00", 1020, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			minute, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, minute)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:00", FormatClock(480))
	assert.Equal(t, "17:00", FormatClock(1020))
	assert.Equal(t, "00:05", FormatClock(5))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestGetConfig(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Missing config", func(t *testing.T) {
		repo.EXPECT().GetConfig(gomock.Any(), domain.CreditWallet).Return(nil, nil)
		_, err := service.GetConfig(context.Background(), domain.CreditWallet)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("Repo error", func(t *testing.T) {
		repo.EXPECT().GetConfig(gomock.Any(), domain.CreditWallet).Return(nil, errors.New("db error"))
		_, err := service.GetConfig(context.Background(), domain.CreditWallet)
		assert.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	service, repo := NewMock(t)
	cfg := weekdayConfig()
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

	repo.EXPECT().GetConfig(gomock.Any(), domain.CreditWallet).Return(cfg, nil)

	got, open, reason, err := service.Status(context.Background(), domain.CreditWallet, now)
	assert.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.True(t, open)
	assert.Equal(t, ReasonOpen, reason)
}

func TestUpdateSchedule(t *testing.T) {
	service, repo := NewMock(t)
	days := []time.Weekday{time.Monday, time.Wednesday}

	tests := []struct {
		name          string
		start, end    int
		days          []time.Weekday
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Successful update",
			start: 540,
			end:   960,
			days:  days,
			prepareMock: func() {
				repo.EXPECT().GetConfig(gomock.Any(), domain.CreditWallet).Return(weekdayConfig(), nil)
				repo.EXPECT().UpdateSchedule(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, cfg *domain.EncashmentConfig) (*domain.EncashmentConfig, error) {
						assert.Equal(t, 540, cfg.StartMinute)
						assert.Equal(t, 960, cfg.EndMinute)
						assert.Equal(t, days, cfg.AllowedDays)
						return cfg, nil
					},
				)
				repo.EXPECT().CreateAudit(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "Start after end",
			start:         1020,
			end:           480,
			days:          days,
			expectedError: ErrInvalidSchedule,
		},
		{
			name:          "Negative start",
			start:         -1,
			end:           480,
			days:          days,
			expectedError: ErrInvalidSchedule,
		},
		{
			name:          "Duplicate days",
			start:         480,
			end:           1020,
			days:          []time.Weekday{time.Monday, time.Monday},
			expectedError: ErrInvalidSchedule,
		},
		{
			name:          "Out of range day",
			start:         480,
			end:           1020,
			days:          []time.Weekday{time.Weekday(7)},
			expectedError: ErrInvalidSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			_, err := service.UpdateSchedule(context.Background(), 2, domain.CreditWallet, tt.start, tt.end, true, tt.days)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestActivateOverride(t *testing.T) {
	service, repo := NewMock(t)
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("Successful activation", func(t *testing.T) {
		repo.EXPECT().GetConfig(gomock.Any(), domain.PassiveWallet).Return(weekdayConfig(), nil)
		repo.EXPECT().SetOverride(gomock.Any(), domain.PassiveWallet, true, now.Add(2*time.Hour)).Return(nil)
		repo.EXPECT().CreateAudit(gomock.Any(), gomock.Any()).Return(nil)

		cfg, err := service.ActivateOverride(context.Background(), 2, domain.PassiveWallet, 2*time.Hour, now)
		assert.NoError(t, err)
		assert.True(t, cfg.OverrideActive)
		assert.Equal(t, now.Add(2*time.Hour), cfg.OverrideExpires)
	})

	t.Run("Non-positive duration", func(t *testing.T) {
		_, err := service.ActivateOverride(context.Background(), 2, domain.PassiveWallet, 0, now)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestDeactivateOverride(t *testing.T) {
	service, repo := NewMock(t)
	cfg := weekdayConfig()
	cfg.OverrideActive = true

	repo.EXPECT().GetConfig(gomock.Any(), domain.CreditWallet).Return(cfg, nil)
	repo.EXPECT().SetOverride(gomock.Any(), domain.CreditWallet, false, gomock.Any()).Return(nil)
	repo.EXPECT().CreateAudit(gomock.Any(), gomock.Any()).Return(nil)

	err := service.DeactivateOverride(context.Background(), 2, domain.CreditWallet)
	assert.NoError(t, err)
}
