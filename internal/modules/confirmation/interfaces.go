package confirmation

import (
	"context"

	"luxestay/internal/hotelapi"
)

type BookingReader interface {
	ConfirmBySession(ctx context.Context, sessionID string) (string, error)
	BookingStatus(ctx context.Context, bookingID string) (*hotelapi.Booking, error)
	Receipt(ctx context.Context, bookingID string) ([]byte, error)
}
