package booking

import (
	"context"
	"strings"
	"time"

	"luxestay/internal/domain"
	"luxestay/internal/pkg/validator"
)

type Service struct {
	rooms RoomReader
}

func NewService(rooms RoomReader) *Service {
	return &Service{rooms: rooms}
}

// RoomContext loads the room detail for the booking page and validates
// the stay parameters carried in the redirect query.
func (s *Service) RoomContext(ctx context.Context, roomID int64, stay StayParams) (*RoomContext, error) {
	checkIn, checkOut, err := parseStayDates(stay)
	if err != nil {
		return nil, err
	}
	if stay.Price <= 0 {
		return nil, domain.ValidationError{Field: "price", Msg: "price is required"}
	}

	room, err := s.rooms.Room(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return &RoomContext{
		Room:   room,
		Stay:   stay,
		Nights: domain.Nights(checkIn, checkOut),
	}, nil
}

// BuildDraft validates the contact form against the stay and assembles
// the booking draft. The caller owns storing it in the session flow.
func (s *Service) BuildDraft(ctx context.Context, roomID int64, stay StayParams, form ContactForm) (*domain.BookingDraft, error) {
	if _, _, err := parseStayDates(stay); err != nil {
		return nil, err
	}
	if stay.Price <= 0 || strings.TrimSpace(stay.RoomType) == "" || stay.BranchID <= 0 {
		return nil, domain.ValidationError{Field: "stay", Msg: "incomplete stay parameters"}
	}

	if fieldErrs := validator.Validate(form); fieldErrs != nil {
		for field, tag := range fieldErrs {
			return nil, domain.ValidationError{Field: field, Msg: "failed " + tag}
		}
	}
	if strings.ContainsAny(form.FirstName, " ") || strings.ContainsAny(form.LastName, " ") {
		return nil, domain.ValidationError{Field: "name", Msg: "first and last name must be single words"}
	}

	room, err := s.rooms.Room(ctx, roomID)
	if err != nil {
		return nil, err
	}
	branchID := stay.BranchID
	if room.BranchID > 0 {
		branchID = room.BranchID
	} else if room.Branch != nil && room.Branch.ID > 0 {
		branchID = room.Branch.ID
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{form.FirstName, form.MiddleName, form.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return &domain.BookingDraft{
		RoomID:       roomID,
		CheckIn:      stay.CheckIn,
		CheckOut:     stay.CheckOut,
		CustomerName: strings.Join(parts, " "),
		PhoneNumber:  form.PhoneNumber,
		Email:        form.Email,
		RoomType:     stay.RoomType,
		BranchID:     branchID,
		Price:        stay.Price,
	}, nil
}

func parseStayDates(stay StayParams) (checkIn, checkOut time.Time, err error) {
	checkIn, err = domain.ParseDate(stay.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "checkIn", Msg: "invalid date"}
	}
	checkOut, err = domain.ParseDate(stay.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "checkOut", Msg: "invalid date"}
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "checkOut", Msg: "check-out must be after check-in"}
	}
	return checkIn, checkOut, nil
}
