package ws

import (
	"encoding/json"
	"time"
)

// Envelope is the frame pushed to feed subscribers for every listing
// change.
type Envelope struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Publisher adapts the hub to the event interface the admin usecase
// publishes through.
type Publisher struct {
	hub *Hub
}

func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

func (p *Publisher) Publish(event string, payload any) {
	if p == nil || p.hub == nil || event == "" {
		return
	}

	b, err := json.Marshal(Envelope{
		Type:      event,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	p.hub.Broadcast(b)
}
