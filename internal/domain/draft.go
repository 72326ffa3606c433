package domain

import "strings"

// BookingDraft is the in-flight reservation record carried from the
// booking form into the payment step. It lives only in the session flow
// state; a bare URL can never reconstruct it.
type BookingDraft struct {
	RoomID       int64  `json:"roomId"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	RoomType     string `json:"roomType"`
	BranchID     int64  `json:"branchId"`
	Price        int64  `json:"price"`
}

// Complete reports whether every field the payment step depends on is
// present. A partial draft is treated the same as a missing one.
func (d BookingDraft) Complete() bool {
	return d.RoomID > 0 &&
		d.BranchID > 0 &&
		d.Price > 0 &&
		strings.TrimSpace(d.CheckIn) != "" &&
		strings.TrimSpace(d.CheckOut) != "" &&
		strings.TrimSpace(d.CustomerName) != "" &&
		strings.TrimSpace(d.PhoneNumber) != "" &&
		strings.TrimSpace(d.Email) != "" &&
		strings.TrimSpace(d.RoomType) != ""
}
