package model

import "github.com/google/uuid"

type Profile struct {
	ID       uuid.UUID `db:"id" json:"id"`
	UserID   uuid.UUID `db:"user_id" json:"userId"`
	Title    string    `db:"title" json:"title"`
	Bio      string    `db:"bio" json:"bio"`
	Location string    `db:"location" json:"location"`
}
