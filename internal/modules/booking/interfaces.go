package booking

import (
	"context"

	"luxestay/internal/hotelapi"
)

type RoomReader interface {
	Room(ctx context.Context, roomID int64) (*hotelapi.Room, error)
}
