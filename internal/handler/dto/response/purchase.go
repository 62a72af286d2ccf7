package response

import (
	"github.com/google/uuid"
)

type PurchaseResponse struct {
	DestinationID uuid.UUID `json:"destination_id"`
	AlreadyOwned  bool      `json:"already_owned"`
}
