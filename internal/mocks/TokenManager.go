package mocks

import (
	model "github.com/dtroode/hard75/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// TokenManager is a mock type for the TokenManager type
type TokenManager struct {
	mock.Mock
}

// GenerateSessionToken provides a mock function with given fields: identity
func (_m *TokenManager) GenerateSessionToken(identity model.Identity) (string, error) {
	ret := _m.Called(identity)

	if len(ret) == 0 {
		panic("no return value specified for GenerateSessionToken")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(model.Identity) (string, error)); ok {
		return rf(identity)
	}
	if rf, ok := ret.Get(0).(func(model.Identity) string); ok {
		r0 = rf(identity)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(model.Identity) error); ok {
		r1 = rf(identity)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ParseSessionToken provides a mock function with given fields: token
func (_m *TokenManager) ParseSessionToken(token string) (model.Identity, error) {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for ParseSessionToken")
	}

	var r0 model.Identity
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (model.Identity, error)); ok {
		return rf(token)
	}
	if rf, ok := ret.Get(0).(func(string) model.Identity); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(model.Identity)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTokenManager creates a new instance of TokenManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	mock := &TokenManager{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
