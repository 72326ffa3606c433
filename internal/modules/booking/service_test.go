package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestay/internal/domain"
	"luxestay/internal/hotelapi"
)

type fakeRooms struct {
	room  *hotelapi.Room
	err   error
	calls int
}

func (f *fakeRooms) Room(context.Context, int64) (*hotelapi.Room, error) {
	f.calls++
	return f.room, f.err
}

func validStay() StayParams {
	return StayParams{
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
		Price:    18998,
		RoomType: "DELUXE",
		BranchID: 3,
	}
}

func validForm() ContactForm {
	return ContactForm{
		FirstName:   "Arjun",
		LastName:    "Mehta",
		PhoneNumber: "9876543210",
		Email:       "arjun@example.com",
	}
}

func deluxeRoom() *hotelapi.Room {
	return &hotelapi.Room{ID: 42, RoomNumber: "204", RoomType: "DELUXE", BranchID: 3}
}

func TestRoomContext(t *testing.T) {
	svc := NewService(&fakeRooms{room: deluxeRoom()})

	ctx, err := svc.RoomContext(context.Background(), 42, validStay())
	require.NoError(t, err)
	assert.Equal(t, int64(42), ctx.Room.ID)
	assert.Equal(t, 2, ctx.Nights)
}

func TestRoomContextBadStay(t *testing.T) {
	rooms := &fakeRooms{room: deluxeRoom()}
	svc := NewService(rooms)

	stay := validStay()
	stay.CheckOut = stay.CheckIn
	_, err := svc.RoomContext(context.Background(), 42, stay)
	assert.True(t, domain.IsValidation(err))

	stay = validStay()
	stay.Price = 0
	_, err = svc.RoomContext(context.Background(), 42, stay)
	assert.True(t, domain.IsValidation(err))

	assert.Zero(t, rooms.calls)
}

func TestRoomContextRoomGone(t *testing.T) {
	svc := NewService(&fakeRooms{err: domain.NotFoundError{Resource: "room"}})
	_, err := svc.RoomContext(context.Background(), 42, validStay())
	assert.True(t, domain.IsNotFound(err))
}

func TestBuildDraft(t *testing.T) {
	svc := NewService(&fakeRooms{room: deluxeRoom()})

	draft, err := svc.BuildDraft(context.Background(), 42, validStay(), validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(42), draft.RoomID)
	assert.Equal(t, "Arjun Mehta", draft.CustomerName)
	assert.Equal(t, "9876543210", draft.PhoneNumber)
	assert.Equal(t, int64(3), draft.BranchID)
	assert.Equal(t, int64(18998), draft.Price)
	assert.True(t, draft.Complete())
}

func TestBuildDraftWithMiddleName(t *testing.T) {
	svc := NewService(&fakeRooms{room: deluxeRoom()})

	form := validForm()
	form.MiddleName = "Kumar"
	draft, err := svc.BuildDraft(context.Background(), 42, validStay(), form)
	require.NoError(t, err)
	assert.Equal(t, "Arjun Kumar Mehta", draft.CustomerName)
}

func TestBuildDraftBranchFromRoomDetail(t *testing.T) {
	// Room detail wins over the carried-over branch id.
	room := deluxeRoom()
	room.BranchID = 0
	room.Branch = &hotelapi.Branch{ID: 7, Name: "Mumbai"}
	svc := NewService(&fakeRooms{room: room})

	draft, err := svc.BuildDraft(context.Background(), 42, validStay(), validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(7), draft.BranchID)
}

func TestBuildDraftPhoneValidation(t *testing.T) {
	svc := NewService(&fakeRooms{room: deluxeRoom()})

	for _, phone := range []string{
		"123456789",   // too short
		"12345678901", // too long
		"5876543210",  // must start with 6-9
		"98765 43210", // no separators
		"+9198765432", // no prefix
		"",
	} {
		form := validForm()
		form.PhoneNumber = phone
		_, err := svc.BuildDraft(context.Background(), 42, validStay(), form)
		assert.True(t, domain.IsValidation(err), "phone %q", phone)
	}

	for _, phone := range []string{"6000000000", "9876543210"} {
		form := validForm()
		form.PhoneNumber = phone
		_, err := svc.BuildDraft(context.Background(), 42, validStay(), form)
		assert.NoError(t, err, "phone %q", phone)
	}
}

func TestBuildDraftEmailValidation(t *testing.T) {
	svc := NewService(&fakeRooms{room: deluxeRoom()})

	for _, email := range []string{
		"not-an-email",
		"a@b",
		"a@b.toolongtld",
		"",
	} {
		form := validForm()
		form.Email = email
		_, err := svc.BuildDraft(context.Background(), 42, validStay(), form)
		assert.True(t, domain.IsValidation(err), "email %q", email)
	}

	form := validForm()
	form.Email = "first.last-x@mail.example.co"
	_, err := svc.BuildDraft(context.Background(), 42, validStay(), form)
	assert.NoError(t, err)
}

func TestBuildDraftNameValidation(t *testing.T) {
	svc := NewService(&fakeRooms{room: deluxeRoom()})

	form := validForm()
	form.FirstName = ""
	_, err := svc.BuildDraft(context.Background(), 42, validStay(), form)
	assert.True(t, domain.IsValidation(err))

	form = validForm()
	form.FirstName = "Arjun Kumar"
	_, err = svc.BuildDraft(context.Background(), 42, validStay(), form)
	assert.True(t, domain.IsValidation(err))

	form = validForm()
	form.LastName = "Mehta Jr"
	_, err = svc.BuildDraft(context.Background(), 42, validStay(), form)
	assert.True(t, domain.IsValidation(err))
}

func TestBuildDraftIncompleteStay(t *testing.T) {
	rooms := &fakeRooms{room: deluxeRoom()}
	svc := NewService(rooms)

	stay := validStay()
	stay.RoomType = ""
	_, err := svc.BuildDraft(context.Background(), 42, stay, validForm())
	assert.True(t, domain.IsValidation(err))
	assert.Zero(t, rooms.calls)
}
