package hotelapi

// Branch is a physical hotel location.
type Branch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PriceEntry maps a room type to its nightly rate in whole rupees.
type PriceEntry struct {
	RoomType      string `json:"roomType"`
	PricePerNight int64  `json:"pricePerNight"`
}

// Room is an availability candidate or a room detail. Branch fields are
// populated only by the room-detail endpoint.
type Room struct {
	ID         int64   `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	BranchID   int64   `json:"branchId"`
	Branch     *Branch `json:"branch,omitempty"`
}

// Booking is the server-owned record read back after submission.
type Booking struct {
	BookingID    string `json:"bookingId"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	RoomType     string `json:"roomType"`
	BranchName   string `json:"branchName"`
	RoomNumber   string `json:"roomNumber"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Price        int64  `json:"price"`
}

// BookingRequest is the shared payload for direct booking and checkout
// session creation.
type BookingRequest struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	BookingTime  string `json:"bookingTime"`
	BranchID     int64  `json:"branchId"`
	RoomType     string `json:"roomType"`
	RoomID       int64  `json:"roomId,omitempty"`
}
