package mocks

import (
	context "context"

	model "github.com/dtroode/sessionkeeper/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// Authenticator is a testify mock of the Authenticator interface.
type Authenticator struct {
	mock.Mock
}

// Authenticate provides a mock function with given fields: ctx, token
func (_m *Authenticator) Authenticate(ctx context.Context, token string) (model.Subject, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 model.Subject
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (model.Subject, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) model.Subject); ok {
		r0 = rf(ctx, token)
	} else {
		r0 = ret.Get(0).(model.Subject)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewAuthenticator creates a new instance of Authenticator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAuthenticator(t interface {
	mock.TestingT
	Cleanup(func())
}) *Authenticator {
	mock := &Authenticator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
