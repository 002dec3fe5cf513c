package partners

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"capitalys/internal/domain/entities"
	"capitalys/internal/usecase/interfaces"
)

// WebhookNotifier delivers registered partner interests to the partner
// network over an outbound webhook.
//
// An empty URL puts the notifier in log-only mode: the payload is logged
// and delivery is skipped. That keeps local development working without a
// partner endpoint.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

var _ interfaces.IPartnerNotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if url == "" {
		log.Printf("[partner][gateway] no webhook url configured, log-only mode")
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type interestPayload struct {
	InterestID       string  `json:"interest_id"`
	UserID           string  `json:"user_id"`
	GoalID           string  `json:"goal_id"`
	DecisionResultID string  `json:"decision_result_id,omitempty"`
	SelectedStrategy string  `json:"selected_strategy"`
	AssetType        string  `json:"asset_type"`
	EstimatedValue   float64 `json:"estimated_value"`
	CreatedAt        string  `json:"created_at"`
}

func (n *WebhookNotifier) NotifyInterest(ctx context.Context, pi entities.PartnerInterest, goal entities.FinancialGoal) error {
	payload := interestPayload{
		InterestID:       pi.ID,
		UserID:           pi.UserID,
		GoalID:           pi.GoalID,
		DecisionResultID: pi.DecisionResultID,
		SelectedStrategy: pi.SelectedStrategy,
		AssetType:        goal.AssetType,
		EstimatedValue:   goal.EstimatedValue,
		CreatedAt:        pi.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if n.url == "" {
		log.Printf("[partner][gateway] log-only delivery interest_id=%s strategy=%s", pi.ID, pi.SelectedStrategy)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("[partner][gateway] delivery failed interest_id=%s err=%v", pi.ID, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[partner][gateway] delivery rejected interest_id=%s status=%d", pi.ID, resp.StatusCode)
		return fmt.Errorf("partner webhook returned status %d", resp.StatusCode)
	}
	log.Printf("[partner][gateway] delivered interest_id=%s status=%d", pi.ID, resp.StatusCode)
	return nil
}
