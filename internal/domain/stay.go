package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire format for all stay dates.
const DateLayout = "2006-01-02"

// ParseDate parses YYYY-MM-DD in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// Nights returns the number of nights between check-in and check-out,
// rounded up and never below 1.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	n := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

// SearchCriteria is the filter-page input. Consumed immediately by the
// availability query, never persisted.
type SearchCriteria struct {
	BranchID int64
	RoomType string
	CheckIn  time.Time
	CheckOut time.Time
}

// Validate enforces checkOut > checkIn with both dates on or after
// today (midnight of the supplied reference day).
func (c SearchCriteria) Validate(today time.Time) error {
	if c.BranchID <= 0 {
		return ValidationError{Field: "branchId", Msg: "branch is required"}
	}
	if strings.TrimSpace(c.RoomType) == "" {
		return ValidationError{Field: "roomType", Msg: "room type is required"}
	}
	if c.CheckIn.IsZero() || c.CheckOut.IsZero() {
		return ValidationError{Field: "dates", Msg: "check-in and check-out are required"}
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if c.CheckIn.Before(day) {
		return ValidationError{Field: "checkIn", Msg: "check-in cannot be in the past"}
	}
	if !c.CheckOut.After(c.CheckIn) {
		return ValidationError{Field: "checkOut", Msg: "check-out must be after check-in"}
	}
	return nil
}
