package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

type EventPublisher interface {
	PublishUserRegistered(userID uuid.UUID, email string) error
	PublishSkillEndorsed(skillID, ownerID uuid.UUID, endorsements int) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type UserRegisteredEvent struct {
	EventType    string    `json:"event_type"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

type SkillEndorsedEvent struct {
	EventType    string    `json:"event_type"`
	SkillID      uuid.UUID `json:"skill_id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Endorsements int       `json:"endorsements"`
	EndorsedAt   time.Time `json:"endorsed_at"`
}

func (p *NatsPublisher) PublishUserRegistered(userID uuid.UUID, email string) error {
	event := UserRegisteredEvent{
		EventType:    "user.registered",
		UserID:       userID,
		Email:        email,
		RegisteredAt: time.Now(),
	}

	eventJSON, err := json.Marshal(event)

	if err != nil {
		return err
	}

	subject := "user.registered"
	err = p.conn.Publish(subject, eventJSON)

	if err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	return nil
}

func (p *NatsPublisher) PublishSkillEndorsed(skillID, ownerID uuid.UUID, endorsements int) error {
	event := SkillEndorsedEvent{
		EventType:    "skill.endorsed",
		SkillID:      skillID,
		OwnerID:      ownerID,
		Endorsements: endorsements,
		EndorsedAt:   time.Now(),
	}

	eventJSON, err := json.Marshal(event)

	if err != nil {
		return err
	}

	subject := "skill.endorsed"
	err = p.conn.Publish(subject, eventJSON)

	if err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	return nil
}

// NoopPublisher lets the server run without a broker. Events are dropped.
type NoopPublisher struct{}

func (NoopPublisher) PublishUserRegistered(uuid.UUID, string) error        { return nil }
func (NoopPublisher) PublishSkillEndorsed(uuid.UUID, uuid.UUID, int) error { return nil }
