package search

import "luxestay/internal/hotelapi"

// FilterContext feeds the filter page: branch list and the price table,
// fetched fresh on every visit.
type FilterContext struct {
	Branches  []hotelapi.Branch `json:"branches"`
	RoomTypes []string          `json:"roomTypes"`
	Prices    map[string]int64  `json:"prices"`
}

type SearchRequest struct {
	BranchID int64  `form:"branchId"`
	RoomType string `form:"type"`
	CheckIn  string `form:"checkIn"`
	CheckOut string `form:"checkOut"`
}

// SearchResult carries the first available candidate and the
// query-encoded booking redirect the SPA navigates to.
type SearchResult struct {
	RoomID        int64  `json:"roomId"`
	RoomType      string `json:"roomType"`
	BranchID      int64  `json:"branchId"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Nights        int    `json:"nights"`
	PricePerNight int64  `json:"pricePerNight"`
	TotalPrice    int64  `json:"totalPrice"`
	RedirectURL   string `json:"redirectUrl"`
}
