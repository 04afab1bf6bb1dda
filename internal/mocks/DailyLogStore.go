package mocks

import (
	context "context"

	model "github.com/dtroode/hard75/internal/model"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// DailyLogStore is a mock type for the DailyLogStore type
type DailyLogStore struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, userID, date
func (_m *DailyLogStore) Get(ctx context.Context, userID uuid.UUID, date string) (model.DailyLog, error) {
	ret := _m.Called(ctx, userID, date)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 model.DailyLog
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) (model.DailyLog, error)); ok {
		return rf(ctx, userID, date)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) model.DailyLog); ok {
		r0 = rf(ctx, userID, date)
	} else {
		r0 = ret.Get(0).(model.DailyLog)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, string) error); ok {
		r1 = rf(ctx, userID, date)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListRange provides a mock function with given fields: ctx, userID, from, to
func (_m *DailyLogStore) ListRange(ctx context.Context, userID uuid.UUID, from string, to string) ([]model.DailyLog, error) {
	ret := _m.Called(ctx, userID, from, to)

	if len(ret) == 0 {
		panic("no return value specified for ListRange")
	}

	var r0 []model.DailyLog
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string, string) ([]model.DailyLog, error)); ok {
		return rf(ctx, userID, from, to)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string, string) []model.DailyLog); ok {
		r0 = rf(ctx, userID, from, to)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.DailyLog)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, string, string) error); ok {
		r1 = rf(ctx, userID, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Upsert provides a mock function with given fields: ctx, log
func (_m *DailyLogStore) Upsert(ctx context.Context, log model.DailyLog) error {
	ret := _m.Called(ctx, log)

	if len(ret) == 0 {
		panic("no return value specified for Upsert")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, model.DailyLog) error); ok {
		r0 = rf(ctx, log)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewDailyLogStore creates a new instance of DailyLogStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDailyLogStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *DailyLogStore {
	mock := &DailyLogStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
