package model

import "github.com/google/uuid"

type Experience struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"userId"`
	Role        string    `db:"role" json:"role"`
	Company     string    `db:"company" json:"company"`
	StartDate   string    `db:"start_date" json:"startDate"`
	EndDate     string    `db:"end_date" json:"endDate"`
	Description string    `db:"description" json:"description"`
}
