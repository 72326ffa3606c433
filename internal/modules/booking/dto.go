package booking

import (
	"luxestay/internal/domain"
	"luxestay/internal/hotelapi"
)

// StayParams are the query-encoded values carried over from the search
// redirect. They describe the stay, not the guest.
type StayParams struct {
	CheckIn  string `form:"checkIn"`
	CheckOut string `form:"checkOut"`
	Price    int64  `form:"price"`
	RoomType string `form:"roomType"`
	BranchID int64  `form:"branchId"`
}

// ContactForm is the guest contact input of the booking page. First and
// last name are required single words; middle name is optional.
type ContactForm struct {
	FirstName   string `json:"firstName" validate:"required"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,inphone"`
	Email       string `json:"email" validate:"required,bookemail"`
}

// RoomContext is what the booking page renders: the room detail plus
// the carried-over stay parameters.
type RoomContext struct {
	Room   *hotelapi.Room `json:"room"`
	Stay   StayParams     `json:"stay"`
	Nights int            `json:"nights"`
}

// DraftResult acknowledges the stored draft and points at the payment step.
type DraftResult struct {
	Draft       domain.BookingDraft `json:"draft"`
	RedirectURL string              `json:"redirectUrl"`
}
