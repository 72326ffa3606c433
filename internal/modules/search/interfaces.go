package search

import (
	"context"

	"luxestay/internal/hotelapi"
)

// HotelAPI is the slice of the upstream client the search flow uses.
type HotelAPI interface {
	Branches(ctx context.Context) ([]hotelapi.Branch, error)
	Prices(ctx context.Context) ([]hotelapi.PriceEntry, error)
	AvailableRooms(ctx context.Context, branchID int64, roomType, checkIn, checkOut string) ([]hotelapi.Room, error)
}
