package shared

import (
	"github.com/google/uuid"
)

type SevaSnapshot struct {
	ID     uuid.UUID
	Name   string
	Amount *int64 // paise
}

type GotraSnapshot struct {
	ID   uuid.UUID
	Name string
}
