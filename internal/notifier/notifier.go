package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/masterbruh1993/mining-trade-finance-sub001/internal/domain"
	"github.com/masterbruh1993/mining-trade-finance-sub001/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// Event is the webhook payload shape.
type Event struct {
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// Service posts platform events to the configured webhook URL. An empty URL
// disables delivery.
type Service struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, client clients.HTTPClientI) *Service {
	return &Service{
		url:    url,
		client: client,
	}
}

func (s *Service) WithdrawalResolved(ctx context.Context, wr *domain.WithdrawalRequest) {
	s.emit(ctx, "withdrawal.resolved", map[string]any{
		"requestId":  wr.ID,
		"userId":     wr.UserID,
		"walletKind": wr.WalletKind,
		"amount":     wr.Amount,
		"netAmount":  wr.NetAmount,
		"status":     wr.Status,
	})
}

func (s *Service) ContractCompleted(ctx context.Context, c *domain.Contract) {
	s.emit(ctx, "contract.completed", map[string]any{
		"contractId":   c.ID,
		"userId":       c.UserID,
		"principal":    c.Principal,
		"totalPaidOut": c.TotalPaidOut,
	})
}

func (s *Service) emit(ctx context.Context, kind string, payload any) {
	if s.url == "" {
		return
	}

	body, err := json.Marshal(Event{
		Kind:      kind,
		Timestamp: time.Now(),
		Payload:   payload,
	})
	if err != nil {
		zap.L().Error("failed to marshal webhook event", zap.Error(err))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		statusCode, _, err := s.client.Post(s.url, nil, body)
		if err == nil && statusCode < http.StatusInternalServerError {
			return
		}

		zap.L().Warn("webhook delivery failed, retrying",
			zap.String("kind", kind),
			zap.Int("attempt", attempt),
			zap.Int("status", statusCode),
			zap.Error(err),
		)
		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}
	zap.L().Error("webhook delivery gave up", zap.String("kind", kind))
}
