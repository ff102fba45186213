package mocks

import (
	context "context"
	time "time"

	model "github.com/dtroode/sessionkeeper/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// SessionService is a testify mock of the SessionService interface.
type SessionService struct {
	mock.Mock
}

// AccessTTL provides a mock function with no fields
func (_m *SessionService) AccessTTL() time.Duration {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for AccessTTL")
	}

	var r0 time.Duration
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(time.Duration)
	}

	return r0
}

// End provides a mock function with given fields: ctx, refreshToken
func (_m *SessionService) End(ctx context.Context, refreshToken string) error {
	ret := _m.Called(ctx, refreshToken)

	if len(ret) == 0 {
		panic("no return value specified for End")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, refreshToken)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RefreshTTL provides a mock function with no fields
func (_m *SessionService) RefreshTTL() time.Duration {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for RefreshTTL")
	}

	var r0 time.Duration
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(time.Duration)
	}

	return r0
}

// RevokeAllForSubject provides a mock function with given fields: ctx, subjectID
func (_m *SessionService) RevokeAllForSubject(ctx context.Context, subjectID int64) error {
	ret := _m.Called(ctx, subjectID)

	if len(ret) == 0 {
		panic("no return value specified for RevokeAllForSubject")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, subjectID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Rotate provides a mock function with given fields: ctx, presentedRefresh
func (_m *SessionService) Rotate(ctx context.Context, presentedRefresh string) (model.TokenPair, model.Subject, error) {
	ret := _m.Called(ctx, presentedRefresh)

	if len(ret) == 0 {
		panic("no return value specified for Rotate")
	}

	var r0 model.TokenPair
	var r1 model.Subject
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (model.TokenPair, model.Subject, error)); ok {
		return rf(ctx, presentedRefresh)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) model.TokenPair); ok {
		r0 = rf(ctx, presentedRefresh)
	} else {
		r0 = ret.Get(0).(model.TokenPair)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) model.Subject); ok {
		r1 = rf(ctx, presentedRefresh)
	} else {
		r1 = ret.Get(1).(model.Subject)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string) error); ok {
		r2 = rf(ctx, presentedRefresh)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewSessionService creates a new instance of SessionService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSessionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionService {
	mock := &SessionService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
