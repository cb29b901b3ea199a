// Package webhook notifies an external HTTP endpoint about committed order transitions.
package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"foodorder/internal/core/domain/model/order"
)

const DefaultTimeout = 5 * time.Second

// Payload is the JSON body posted for every transition.
type Payload struct {
	OrderID      int64         `json:"order_id"`
	CustomerName string        `json:"customer_name"`
	Status       string        `json:"status"`
	Total        string        `json:"total"`
	Lines        []PayloadLine `json:"lines"`
	SentAt       time.Time     `json:"sent_at"`
}

type PayloadLine struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
}

// Sink implements ports.OrderEventSink by POSTing a Payload to a fixed URL.
// It never retries; wrap it in an eventsink.Breaker to stop calling a dead endpoint.
type Sink struct {
	client *resty.Client
	url    string
	now    func() time.Time
}

func NewSink(url string, timeout time.Duration) *Sink {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Sink{
		client: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0),
		url: url,
		now: time.Now,
	}
}

func (s *Sink) Name() string {
	return "webhook"
}

// Append posts the snapshot. Any non-2xx response is an error.
func (s *Sink) Append(ctx context.Context, snapshot order.Snapshot) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(newPayload(snapshot, s.now())).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("post order event: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("post order event: unexpected status %d", resp.StatusCode())
	}
	return nil
}

func newPayload(snapshot order.Snapshot, sentAt time.Time) Payload {
	lines := make([]PayloadLine, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		lines = append(lines, PayloadLine{
			ItemID:   int(line.Item().ID()),
			Name:     line.Item().Name(),
			Quantity: line.Quantity(),
			Price:    line.Item().Price().String(),
			Subtotal: line.Subtotal().String(),
		})
	}

	return Payload{
		OrderID:      int64(snapshot.ID),
		CustomerName: snapshot.CustomerName,
		Status:       snapshot.Status.String(),
		Total:        snapshot.Total.String(),
		Lines:        lines,
		SentAt:       sentAt.UTC(),
	}
}
