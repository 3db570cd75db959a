package events

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

const subjectAssistantQuery = "assistant.query.processed"

// AssistantQueryEvent records one processed assistant query for analytics
type AssistantQueryEvent struct {
	EventType   string    `json:"eventType"`
	SourceID    string    `json:"sourceId"`
	SessionID   string    `json:"sessionId,omitempty"`
	Intent      string    `json:"intent"`
	Query       string    `json:"query,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Category    string    `json:"category,omitempty"`
	MinPrice    *float64  `json:"minPrice,omitempty"`
	MaxPrice    *float64  `json:"maxPrice,omitempty"`
	ResultCount int       `json:"resultCount"`
	Timestamp   time.Time `json:"timestamp"`
}

// Publisher emits assistant analytics events over NATS. It is optional:
// main only constructs one when NATS_URL is set, and handlers tolerate a
// nil publisher.
type Publisher struct {
	conn   *nats.Conn
	logger *logrus.Entry
}

// NewPublisher connects to the NATS server named by NATS_URL
func NewPublisher(logger *logrus.Logger) (*Publisher, error) {
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}

	conn, err := nats.Connect(natsURL,
		nats.Name("storefront-assistant-service"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{
		conn:   conn,
		logger: logger.WithField("component", "assistant-events"),
	}, nil
}

// Close drains the NATS connection
func (p *Publisher) Close() {
	if p.conn != nil {
		_ = p.conn.Drain()
	}
}

// PublishAssistantQuery publishes an assistant query event asynchronously
// so the chat path never blocks on the broker.
func (p *Publisher) PublishAssistantQuery(event AssistantQueryEvent) {
	event.EventType = subjectAssistantQuery
	event.SourceID = uuid.New().String()
	event.Timestamp = time.Now().UTC()

	go func() {
		data, err := json.Marshal(event)
		if err != nil {
			p.logger.WithError(err).Error("Failed to marshal assistant query event")
			return
		}

		if err := p.conn.Publish(subjectAssistantQuery, data); err != nil {
			p.logger.WithFields(logrus.Fields{
				"intent":      event.Intent,
				"resultCount": event.ResultCount,
			}).WithError(err).Error("Failed to publish assistant query event")
			return
		}

		p.logger.WithFields(logrus.Fields{
			"intent":      event.Intent,
			"resultCount": event.ResultCount,
		}).Debug("Assistant query event published")
	}()
}
