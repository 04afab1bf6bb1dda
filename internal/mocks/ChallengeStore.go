package mocks

import (
	context "context"

	model "github.com/dtroode/hard75/internal/model"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// ChallengeStore is a mock type for the ChallengeStore type
type ChallengeStore struct {
	mock.Mock
}

// GetByUserID provides a mock function with given fields: ctx, userID
func (_m *ChallengeStore) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Challenge, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetByUserID")
	}

	var r0 model.Challenge
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (model.Challenge, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.Challenge); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(model.Challenge)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListStale provides a mock function with given fields: ctx, today
func (_m *ChallengeStore) ListStale(ctx context.Context, today string) ([]model.Challenge, error) {
	ret := _m.Called(ctx, today)

	if len(ret) == 0 {
		panic("no return value specified for ListStale")
	}

	var r0 []model.Challenge
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]model.Challenge, error)); ok {
		return rf(ctx, today)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []model.Challenge); ok {
		r0 = rf(ctx, today)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Challenge)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, today)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ResetStale provides a mock function with given fields: ctx, today, limit
func (_m *ChallengeStore) ResetStale(ctx context.Context, today string, limit int) (int64, error) {
	ret := _m.Called(ctx, today, limit)

	if len(ret) == 0 {
		panic("no return value specified for ResetStale")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) (int64, error)); ok {
		return rf(ctx, today, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int) int64); ok {
		r0 = rf(ctx, today, limit)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, today, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Upsert provides a mock function with given fields: ctx, challenge
func (_m *ChallengeStore) Upsert(ctx context.Context, challenge model.Challenge) error {
	ret := _m.Called(ctx, challenge)

	if len(ret) == 0 {
		panic("no return value specified for Upsert")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Challenge) error); ok {
		r0 = rf(ctx, challenge)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewChallengeStore creates a new instance of ChallengeStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewChallengeStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChallengeStore {
	mock := &ChallengeStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
