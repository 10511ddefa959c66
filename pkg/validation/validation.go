package validation

import (
	"regexp"
	"strings"
	"time"

	"logistics-service/pkg/apperr"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateCapacity checks that a vehicle's load capacity is positive.
func ValidateCapacity(capacityKg float64) error {
	if capacityKg <= 0 {
		return apperr.Invalid("capacity must be greater than zero")
	}
	return nil
}

// ValidateFuelEfficiency checks that a vehicle's km-per-litre ratio is positive.
// Rejecting zero here keeps the fuel division in route optimization safe.
func ValidateFuelEfficiency(kmPerLitre float64) error {
	if kmPerLitre <= 0 {
		return apperr.Invalid("fuel efficiency must be greater than zero")
	}
	return nil
}

// ValidateCoordinates checks geographic range: latitude [-90,90], longitude [-180,180].
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return apperr.Invalid("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return apperr.Invalid("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateWeight checks that a shipment weight is positive and within the
// carrying vehicle's capacity.
func ValidateWeight(weightKg, capacityKg float64) error {
	if weightKg <= 0 {
		return apperr.Invalid("weight must be greater than zero")
	}
	if weightKg > capacityKg {
		return apperr.Invalid("weight %.2fkg exceeds vehicle capacity %.2fkg", weightKg, capacityKg)
	}
	return nil
}

// ValidateScheduledDate checks that a shipment is not scheduled for a past
// calendar day. Same-day scheduling is valid.
func ValidateScheduledDate(date, now time.Time) error {
	if dayOf(date).Before(dayOf(now)) {
		return apperr.Invalid("scheduled date is in the past")
	}
	return nil
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateEmail checks basic email shape and length.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !emailRegex.MatchString(email) || len(email) > 200 {
		return apperr.Invalid("invalid email address")
	}
	return nil
}

// ValidateName checks a display name is present and sane.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 200 {
		return apperr.Invalid("name must be between 2 and 200 characters")
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 6 || len(password) > 100 {
		return apperr.Invalid("password must be between 6 and 100 characters")
	}
	return nil
}
