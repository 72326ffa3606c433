package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestay/internal/domain"
	"luxestay/internal/hotelapi"
)

type fakeAPI struct {
	branches    []hotelapi.Branch
	branchesErr error
	prices      []hotelapi.PriceEntry
	pricesErr   error

	rooms      []hotelapi.Room
	roomsErr   error
	roomsCalls int
	lastQuery  struct {
		branchID          int64
		roomType          string
		checkIn, checkOut string
	}
}

func (f *fakeAPI) Branches(context.Context) ([]hotelapi.Branch, error) {
	return f.branches, f.branchesErr
}

func (f *fakeAPI) Prices(context.Context) ([]hotelapi.PriceEntry, error) {
	return f.prices, f.pricesErr
}

func (f *fakeAPI) AvailableRooms(_ context.Context, branchID int64, roomType, checkIn, checkOut string) ([]hotelapi.Room, error) {
	f.roomsCalls++
	f.lastQuery.branchID = branchID
	f.lastQuery.roomType = roomType
	f.lastQuery.checkIn = checkIn
	f.lastQuery.checkOut = checkOut
	return f.rooms, f.roomsErr
}

func fixedNow() time.Time {
	return time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
}

func newTestService(api *fakeAPI) *Service {
	return NewService(api).WithNow(fixedNow)
}

func validRequest() SearchRequest {
	return SearchRequest{
		BranchID: 3,
		RoomType: "DELUXE",
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	}
}

func TestFilterContext(t *testing.T) {
	api := &fakeAPI{
		branches: []hotelapi.Branch{{ID: 1, Name: "Chennai"}, {ID: 2, Name: "Mumbai"}},
		prices: []hotelapi.PriceEntry{
			{RoomType: "STANDARD", PricePerNight: 4999},
			{RoomType: "DELUXE", PricePerNight: 9499},
		},
	}
	svc := newTestService(api)

	ctx, err := svc.FilterContext(context.Background())
	require.NoError(t, err)
	assert.Len(t, ctx.Branches, 2)
	assert.Equal(t, []string{"STANDARD", "DELUXE"}, ctx.RoomTypes)
	assert.Equal(t, int64(9499), ctx.Prices["DELUXE"])
}

func TestFilterContextUpstreamDown(t *testing.T) {
	api := &fakeAPI{branchesErr: domain.TransientError{Op: "branch/all"}}
	_, err := newTestService(api).FilterContext(context.Background())
	assert.True(t, domain.IsTransient(err))
}

func TestSearch(t *testing.T) {
	api := &fakeAPI{
		prices: []hotelapi.PriceEntry{{RoomType: "DELUXE", PricePerNight: 9499}},
		rooms: []hotelapi.Room{
			{ID: 42, RoomNumber: "204", RoomType: "DELUXE"},
			{ID: 43, RoomNumber: "205", RoomType: "DELUXE"},
		},
	}
	svc := newTestService(api)

	result, err := svc.Search(context.Background(), validRequest())
	require.NoError(t, err)

	// First candidate in server order, never the second.
	assert.Equal(t, int64(42), result.RoomID)
	assert.Equal(t, 2, result.Nights)
	assert.Equal(t, int64(18998), result.TotalPrice)
	assert.Equal(t, "/book/42?branchId=3&checkIn=2025-06-01&checkOut=2025-06-03&price=18998&roomType=DELUXE", result.RedirectURL)

	assert.Equal(t, int64(3), api.lastQuery.branchID)
	assert.Equal(t, "DELUXE", api.lastQuery.roomType)
}

// Padded date input validates but must not leak upstream or into the
// redirect; only the canonical form is forwarded.
func TestSearchNormalizesPaddedDates(t *testing.T) {
	api := &fakeAPI{
		prices: []hotelapi.PriceEntry{{RoomType: "DELUXE", PricePerNight: 9499}},
		rooms:  []hotelapi.Room{{ID: 42, RoomType: "DELUXE"}},
	}
	req := validRequest()
	req.CheckIn = " 2025-06-01 "
	req.CheckOut = " 2025-06-03"

	result, err := newTestService(api).Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", api.lastQuery.checkIn)
	assert.Equal(t, "2025-06-03", api.lastQuery.checkOut)
	assert.Equal(t, "2025-06-01", result.CheckIn)
	assert.Equal(t, "2025-06-03", result.CheckOut)
	assert.Equal(t, "/book/42?branchId=3&checkIn=2025-06-01&checkOut=2025-06-03&price=18998&roomType=DELUXE", result.RedirectURL)
}

func TestSearchNoRooms(t *testing.T) {
	api := &fakeAPI{
		prices: []hotelapi.PriceEntry{{RoomType: "DELUXE", PricePerNight: 9499}},
		rooms:  nil,
	}
	_, err := newTestService(api).Search(context.Background(), validRequest())
	assert.True(t, domain.IsNotFound(err))
}

func TestSearchUnknownRoomType(t *testing.T) {
	api := &fakeAPI{
		prices: []hotelapi.PriceEntry{{RoomType: "STANDARD", PricePerNight: 4999}},
	}
	_, err := newTestService(api).Search(context.Background(), validRequest())
	assert.True(t, domain.IsNotFound(err))
	assert.Zero(t, api.roomsCalls)
}

func TestSearchValidation(t *testing.T) {
	api := &fakeAPI{prices: []hotelapi.PriceEntry{{RoomType: "DELUXE", PricePerNight: 9499}}}
	svc := newTestService(api)

	cases := []struct {
		name   string
		mutate func(*SearchRequest)
	}{
		{"bad check-in", func(r *SearchRequest) { r.CheckIn = "01-06-2025" }},
		{"bad check-out", func(r *SearchRequest) { r.CheckOut = "soon" }},
		{"check-out not after check-in", func(r *SearchRequest) { r.CheckOut = r.CheckIn }},
		{"check-in in the past", func(r *SearchRequest) { r.CheckIn = "2025-05-19"; r.CheckOut = "2025-05-21" }},
		{"missing branch", func(r *SearchRequest) { r.BranchID = 0 }},
		{"missing room type", func(r *SearchRequest) { r.RoomType = "  " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.Search(context.Background(), req)
			assert.True(t, domain.IsValidation(err), "got %v", err)
		})
	}

	// None of the invalid requests should have hit availability.
	assert.Zero(t, api.roomsCalls)
}

func TestSearchUpstreamDown(t *testing.T) {
	api := &fakeAPI{
		prices:   []hotelapi.PriceEntry{{RoomType: "DELUXE", PricePerNight: 9499}},
		roomsErr: domain.TransientError{Op: "room/available"},
	}
	_, err := newTestService(api).Search(context.Background(), validRequest())
	assert.True(t, domain.IsTransient(err))
}
