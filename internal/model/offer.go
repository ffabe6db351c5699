package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxOfferSummaryLength caps the short summary shown in banners.
const MaxOfferSummaryLength = 100

// SpecialOffer is a promotional record. Offers are informational banners only;
// they are never deducted from cart totals automatically.
type SpecialOffer struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
	Title              string    `json:"title" db:"title"`
	Summary            string    `json:"summary" db:"summary"`
	Details            *string   `json:"details,omitempty" db:"details"`
	IsActive           bool      `json:"isActive" db:"is_active"`
	StartDate          time.Time `json:"startDate" db:"start_date"`
	EndDate            time.Time `json:"endDate" db:"end_date"`
	ApplicableProducts []string  `json:"applicableProducts" db:"applicable_products"`
	Priority           int       `json:"priority" db:"priority"`
}
