package validation

import (
	"strings"
	"testing"
	"time"

	"logistics-service/pkg/apperr"
)

func TestValidateCapacity(t *testing.T) {
	cases := []struct {
		name     string
		capacity float64
		wantErr  bool
	}{
		{"positive capacity", 1000, false},
		{"small positive capacity", 0.5, false},
		{"zero capacity", 0, true},
		{"negative capacity", -10, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateCapacity(c.capacity)
			if (err != nil) != c.wantErr {
				t.Errorf("ValidateCapacity(%v) = %v, wantErr %v", c.capacity, err, c.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "capacity") {
				t.Errorf("error %q does not mention capacity", err)
			}
		})
	}
}

func TestValidateFuelEfficiency(t *testing.T) {
	if err := ValidateFuelEfficiency(12.5); err != nil {
		t.Errorf("ValidateFuelEfficiency(12.5) = %v, want nil", err)
	}
	for _, v := range []float64{0, -1} {
		if err := ValidateFuelEfficiency(v); err == nil {
			t.Errorf("ValidateFuelEfficiency(%v) = nil, want error", v)
		}
	}
}

func TestValidateCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
		wantErr  bool
		mention  string
	}{
		{"origin", 0, 0, false, ""},
		{"north pole", 90, 0, false, ""},
		{"date line", 45, -180, false, ""},
		{"latitude too high", 90.1, 0, true, "latitude"},
		{"latitude too low", -91, 0, true, "latitude"},
		{"longitude too high", 0, 180.5, true, "longitude"},
		{"longitude too low", 0, -181, true, "longitude"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateCoordinates(c.lat, c.lng)
			if (err != nil) != c.wantErr {
				t.Fatalf("ValidateCoordinates(%v, %v) = %v, wantErr %v", c.lat, c.lng, err, c.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), c.mention) {
				t.Errorf("error %q does not mention %q", err, c.mention)
			}
		})
	}
}

func TestValidateWeight(t *testing.T) {
	cases := []struct {
		name             string
		weight, capacity float64
		wantErr          bool
		mention          string
	}{
		{"well within capacity", 100, 1000, false, ""},
		{"exactly at capacity", 200, 200, false, ""},
		{"over capacity", 500, 200, true, "exceeds"},
		{"zero weight", 0, 1000, true, "weight"},
		{"negative weight", -5, 1000, true, "weight"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateWeight(c.weight, c.capacity)
			if (err != nil) != c.wantErr {
				t.Fatalf("ValidateWeight(%v, %v) = %v, wantErr %v", c.weight, c.capacity, err, c.wantErr)
			}
			if err != nil {
				if !apperr.IsInvalid(err) {
					t.Errorf("error %v is not an InvalidArgumentError", err)
				}
				if !strings.Contains(err.Error(), c.mention) {
					t.Errorf("error %q does not mention %q", err, c.mention)
				}
			}
		})
	}
}

func TestValidateScheduledDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)
	cases := []struct {
		name    string
		date    time.Time
		wantErr bool
	}{
		{"tomorrow", now.AddDate(0, 0, 1), false},
		{"same day earlier hour", now.Add(-10 * time.Hour), false},
		{"yesterday", now.AddDate(0, 0, -1), true},
		{"last month", now.AddDate(0, -1, 0), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateScheduledDate(c.date, now)
			if (err != nil) != c.wantErr {
				t.Fatalf("ValidateScheduledDate(%v) = %v, wantErr %v", c.date, err, c.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "past") {
				t.Errorf("error %q does not mention past", err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com"}
	invalid := []string{"", "not-an-email", "a@b", "@example.com"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", e, err)
		}
	}
	for _, e := range invalid {
		if err := ValidateEmail(e); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", e)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret"); err != nil {
		t.Errorf("ValidatePassword(6 chars) = %v, want nil", err)
	}
	if err := ValidatePassword("short"); err == nil {
		t.Error("ValidatePassword(5 chars) = nil, want error")
	}
}
