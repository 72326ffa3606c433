package payment

import (
	"context"

	"luxestay/internal/hotelapi"
)

type BookingSubmitter interface {
	CreateBooking(ctx context.Context, req hotelapi.BookingRequest) (string, error)
	CreateCheckoutSession(ctx context.Context, req hotelapi.BookingRequest) (string, error)
}
