package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
	KindDeleted Kind = "deleted"
)

// TransactionChanged announces a committed write to a user's transactions.
// Consumers use it to refresh their snapshot before recomputing analytics.
type TransactionChanged struct {
	Kind          Kind      `json:"kind"`
	UserID        uuid.UUID `json:"userID"`
	TransactionID uuid.UUID `json:"transactionID"`
	Date          string    `json:"date,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewTransactionChanged(kind Kind, userID, transactionID uuid.UUID, date string) TransactionChanged {
	return TransactionChanged{
		Kind:          kind,
		UserID:        userID,
		TransactionID: transactionID,
		Date:          date,
		OccurredAt:    time.Now().UTC(),
	}
}

func (m TransactionChanged) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RoutingKey is "transaction.<kind>".
func (m TransactionChanged) RoutingKey() string {
	return "transaction." + string(m.Kind)
}

type Publisher interface {
	PublishTransactionChanged(ctx context.Context, msg TransactionChanged) error
	Close() error
}

// NoopPublisher drops every message. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishTransactionChanged(context.Context, TransactionChanged) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
