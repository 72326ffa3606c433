package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"luxestay/internal/domain"
)

type Service struct {
	api HotelAPI
	now func() time.Time
}

func NewService(api HotelAPI) *Service {
	return &Service{api: api, now: time.Now}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// FilterContext loads branches and the price table. Both are discarded
// after the response; the next visit fetches them again.
func (s *Service) FilterContext(ctx context.Context) (*FilterContext, error) {
	branches, err := s.api.Branches(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := s.api.Prices(ctx)
	if err != nil {
		return nil, err
	}

	out := &FilterContext{
		Branches:  branches,
		RoomTypes: make([]string, 0, len(prices)),
		Prices:    make(map[string]int64, len(prices)),
	}
	for _, p := range prices {
		out.Prices[p.RoomType] = p.PricePerNight
		out.RoomTypes = append(out.RoomTypes, p.RoomType)
	}
	return out, nil
}

// Search validates the criteria, derives nights and total price, asks
// for availability and picks the first candidate. Zero candidates is a
// NotFound outcome, not a failure.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	checkIn, err := domain.ParseDate(req.CheckIn)
	if err != nil {
		return nil, domain.ValidationError{Field: "checkIn", Msg: "invalid date"}
	}
	checkOut, err := domain.ParseDate(req.CheckOut)
	if err != nil {
		return nil, domain.ValidationError{Field: "checkOut", Msg: "invalid date"}
	}

	criteria := domain.SearchCriteria{
		BranchID: req.BranchID,
		RoomType: strings.TrimSpace(req.RoomType),
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	if err := criteria.Validate(s.now().UTC()); err != nil {
		return nil, err
	}

	prices, err := s.api.Prices(ctx)
	if err != nil {
		return nil, err
	}
	var perNight int64
	for _, p := range prices {
		if p.RoomType == criteria.RoomType {
			perNight = p.PricePerNight
			break
		}
	}
	if perNight <= 0 {
		return nil, domain.NotFoundError{Resource: "price for room type"}
	}

	nights := domain.Nights(checkIn, checkOut)
	total := int64(nights) * perNight

	// Canonical date strings from here on; the raw input may carry padding.
	checkInStr := checkIn.Format(domain.DateLayout)
	checkOutStr := checkOut.Format(domain.DateLayout)

	rooms, err := s.api.AvailableRooms(ctx, criteria.BranchID, criteria.RoomType, checkInStr, checkOutStr)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, domain.NotFoundError{Resource: "available rooms"}
	}

	// Server-defined order; the flow takes the first candidate only.
	room := rooms[0]

	q := url.Values{}
	q.Set("checkIn", checkInStr)
	q.Set("checkOut", checkOutStr)
	q.Set("price", fmt.Sprintf("%d", total))
	q.Set("roomType", criteria.RoomType)
	q.Set("branchId", fmt.Sprintf("%d", criteria.BranchID))

	return &SearchResult{
		RoomID:        room.ID,
		RoomType:      criteria.RoomType,
		BranchID:      criteria.BranchID,
		CheckIn:       checkInStr,
		CheckOut:      checkOutStr,
		Nights:        nights,
		PricePerNight: perNight,
		TotalPrice:    total,
		RedirectURL:   fmt.Sprintf("/book/%d?%s", room.ID, q.Encode()),
	}, nil
}
