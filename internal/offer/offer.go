// Package offer classifies promotional records relative to wall-clock time.
// Every function is pure; the caller supplies now.
package offer

import (
	"time"

	"github.com/gosm1/pureperfumes/internal/model"
)

// Status is the four-valued classification of an offer.
type Status string

const (
	StatusInactive Status = "inactive"
	StatusUpcoming Status = "upcoming"
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
)

// StatusAt computes the offer status with this exact precedence: an inactive
// flag wins over the dates, then upcoming before the start, then expired
// after the end. Equality with either boundary counts as active.
func StatusAt(o model.SpecialOffer, now time.Time) Status {
	if !o.IsActive {
		return StatusInactive
	}
	if now.Before(o.StartDate) {
		return StatusUpcoming
	}
	if now.After(o.EndDate) {
		return StatusExpired
	}
	return StatusActive
}

// IsValidAt reports whether the offer is currently active.
func IsValidAt(o model.SpecialOffer, now time.Time) bool {
	return StatusAt(o, now) == StatusActive
}

// IsProductEligible reports whether the offer is displayed against the
// product. An empty applicable-products list is a wildcard.
func IsProductEligible(productID string, o model.SpecialOffer) bool {
	if len(o.ApplicableProducts) == 0 {
		return true
	}
	for _, id := range o.ApplicableProducts {
		if id == productID {
			return true
		}
	}
	return false
}
