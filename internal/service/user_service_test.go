package service

import (
	"context"
	"errors"
	"testing"

	"astro-chat-be/internal/dto"
	"astro-chat-be/internal/pkg/serverutils"
	"astro-chat-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func newUserServiceForTest() (IUserService, *fakeStore, *fakePublisher) {
	store := newFakeStore()
	publisher := &fakePublisher{}
	svc := NewUserService(&fakeUowFactory{store: store}, publisher, nopLogger{})
	return svc, store, publisher
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Phone:         "+919876543210",
		Name:          "Priya",
		DateOfBirth:   "1990-05-15",
		BirthTime:     "14:30",
		BirthLocation: "Mumbai, India",
	}
}

func TestRegister(t *testing.T) {
	svc, store, publisher := newUserServiceForTest()

	user, err := svc.Register(context.Background(), registerRequest())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.Id)
	assert.Equal(t, "+919876543210", user.Phone)
	assert.NotNil(t, user.BirthTime)
	assert.Len(t, store.users, 1)

	assert.Len(t, publisher.events, 1)
	assert.Equal(t, events.ActionRegistered, publisher.events[0].Action)
	assert.Equal(t, user.Id, publisher.events[0].UserID)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, store, _ := newUserServiceForTest()

	_, err := svc.Register(context.Background(), registerRequest())
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	var appErr *serverutils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "User with this phone number already exists", appErr.Message)
	assert.Len(t, store.users, 1)
}

func TestRegisterWithoutBirthTime(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	req := registerRequest()
	req.BirthTime = ""
	req.UnknownBirthTime = true

	user, err := svc.Register(context.Background(), req)
	assert.NoError(t, err)
	assert.Nil(t, user.BirthTime)
	assert.True(t, user.UnknownBirthTime)
}

func TestGetByPhone(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	created, err := svc.Register(context.Background(), registerRequest())
	assert.NoError(t, err)

	found, err := svc.GetByPhone(context.Background(), "+919876543210")
	assert.NoError(t, err)
	assert.Equal(t, created.Id, found.Id)

	_, err = svc.GetByPhone(context.Background(), "+910000000000")
	var appErr *serverutils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}

func TestUpdateContact(t *testing.T) {
	svc, _, _ := newUserServiceForTest()

	created, err := svc.Register(context.Background(), registerRequest())
	assert.NoError(t, err)

	updated, err := svc.UpdateContact(context.Background(), created.Id, &dto.UpdateContactRequest{Email: "priya@example.com"})
	assert.NoError(t, err)
	assert.NotNil(t, updated.Email)
	assert.Equal(t, "priya@example.com", *updated.Email)

	_, err = svc.UpdateContact(context.Background(), 99, &dto.UpdateContactRequest{Email: "x@example.com"})
	var appErr *serverutils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}
