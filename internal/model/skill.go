package model

import "github.com/google/uuid"

type Skill struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"userId"`
	Name         string    `db:"name" json:"name"`
	Level        string    `db:"level" json:"level"`
	Endorsements int       `db:"endorsements" json:"endorsements"`
}
