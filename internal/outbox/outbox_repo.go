// Package outbox persists domain events next to the data they describe, so
// a crashed publisher never loses an event. cmd/worker drains the table.
package outbox

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

const outboxCollection = "outbox"

// Event statuses.
const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

type Event struct {
	ID            string     `json:"id" firestore:"-"`
	EventType     string     `json:"eventType" firestore:"eventType"`
	AggregateType string     `json:"aggregateType" firestore:"aggregateType"`
	AggregateID   string     `json:"aggregateId" firestore:"aggregateId"`
	Payload       []byte     `json:"payload" firestore:"payload"`
	Status        string     `json:"status" firestore:"status"`
	CreatedAt     time.Time  `json:"createdAt" firestore:"createdAt"`
	SentAt        *time.Time `json:"sentAt,omitempty" firestore:"sentAt,omitempty"`
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	Add(ctx context.Context, eventType, aggregateType, aggregateID string, payload []byte) (Event, error)
	ListPending(ctx context.Context, limit int) ([]Event, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

type repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &repository{client: client}
}

func (r *repository) col() *firestore.CollectionRef {
	return r.client.Collection(outboxCollection)
}

func (r *repository) Add(ctx context.Context, eventType, aggregateType, aggregateID string, payload []byte) (Event, error) {
	e := Event{
		ID:            uuid.NewString(),
		EventType:     eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Payload:       payload,
		Status:        StatusPending,
		CreatedAt:     time.Now(),
	}

	if _, err := r.col().Doc(e.ID).Set(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (r *repository) ListPending(ctx context.Context, limit int) ([]Event, error) {
	snaps, err := r.col().
		Where("status", "==", StatusPending).
		OrderBy("createdAt", firestore.Asc).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(snaps))
	for _, snap := range snaps {
		var e Event
		if err := snap.DataTo(&e); err != nil {
			return nil, err
		}
		e.ID = snap.Ref.ID
		events = append(events, e)
	}
	return events, nil
}

func (r *repository) MarkSent(ctx context.Context, id string) error {
	now := time.Now()
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: StatusSent},
		{Path: "sentAt", Value: &now},
	})
	return err
}

func (r *repository) MarkFailed(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: StatusFailed},
	})
	return err
}
