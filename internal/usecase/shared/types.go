package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands decoupled from read-side query types.
type DestinationSnapshot struct {
	ID   uuid.UUID
	Name string
}

type CruiseSnapshot struct {
	ID             uuid.UUID
	Name           string
	DepartureDate  time.Time
	DestinationIDs []uuid.UUID
}

type ReviewSnapshot struct {
	ID            uuid.UUID
	DestinationID uuid.UUID
	AuthorID      uuid.UUID
	Rating        int
	Comment       string
}
