package mocks

import (
	time "time"

	model "github.com/dtroode/sessionkeeper/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// TokenManager is a testify mock of the TokenManager interface.
type TokenManager struct {
	mock.Mock
}

// IssueAccessToken provides a mock function with given fields: subject
func (_m *TokenManager) IssueAccessToken(subject model.Subject) (string, error) {
	ret := _m.Called(subject)

	if len(ret) == 0 {
		panic("no return value specified for IssueAccessToken")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(model.Subject) (string, error)); ok {
		return rf(subject)
	}
	if rf, ok := ret.Get(0).(func(model.Subject) string); ok {
		r0 = rf(subject)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(model.Subject) error); ok {
		r1 = rf(subject)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// TTL provides a mock function with no fields
func (_m *TokenManager) TTL() time.Duration {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for TTL")
	}

	var r0 time.Duration
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(time.Duration)
	}

	return r0
}

// VerifyAccessToken provides a mock function with given fields: token
func (_m *TokenManager) VerifyAccessToken(token string) (model.Subject, error) {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for VerifyAccessToken")
	}

	var r0 model.Subject
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (model.Subject, error)); ok {
		return rf(token)
	}
	if rf, ok := ret.Get(0).(func(string) model.Subject); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(model.Subject)
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
