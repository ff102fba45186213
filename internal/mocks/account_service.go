package mocks

import (
	context "context"

	model "github.com/dtroode/sessionkeeper/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// AccountService is a testify mock of the AccountService interface.
type AccountService struct {
	mock.Mock
}

// ChangePassword provides a mock function with given fields: ctx, subjectID, newPassword
func (_m *AccountService) ChangePassword(ctx context.Context, subjectID int64, newPassword string) error {
	ret := _m.Called(ctx, subjectID, newPassword)

	if len(ret) == 0 {
		panic("no return value specified for ChangePassword")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) error); ok {
		r0 = rf(ctx, subjectID, newPassword)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Login provides a mock function with given fields: ctx, email, password
func (_m *AccountService) Login(ctx context.Context, email string, password string) (model.Subject, model.TokenPair, error) {
	ret := _m.Called(ctx, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 model.Subject
	var r1 model.TokenPair
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (model.Subject, model.TokenPair, error)); ok {
		return rf(ctx, email, password)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) model.Subject); ok {
		r0 = rf(ctx, email, password)
	} else {
		r0 = ret.Get(0).(model.Subject)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) model.TokenPair); ok {
		r1 = rf(ctx, email, password)
	} else {
		r1 = ret.Get(1).(model.TokenPair)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, string) error); ok {
		r2 = rf(ctx, email, password)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// Me provides a mock function with given fields: ctx, subjectID
func (_m *AccountService) Me(ctx context.Context, subjectID int64) (model.Subject, error) {
	ret := _m.Called(ctx, subjectID)

	if len(ret) == 0 {
		panic("no return value specified for Me")
	}

	var r0 model.Subject
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (model.Subject, error)); ok {
		return rf(ctx, subjectID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) model.Subject); ok {
		r0 = rf(ctx, subjectID)
	} else {
		r0 = ret.Get(0).(model.Subject)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, subjectID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Register provides a mock function with given fields: ctx, email, password, role
func (_m *AccountService) Register(ctx context.Context, email string, password string, role model.Role) (model.Subject, model.TokenPair, error) {
	ret := _m.Called(ctx, email, password, role)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 model.Subject
	var r1 model.TokenPair
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, model.Role) (model.Subject, model.TokenPair, error)); ok {
		return rf(ctx, email, password, role)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, model.Role) model.Subject); ok {
		r0 = rf(ctx, email, password, role)
	} else {
		r0 = ret.Get(0).(model.Subject)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, model.Role) model.TokenPair); ok {
		r1 = rf(ctx, email, password, role)
	} else {
		r1 = ret.Get(1).(model.TokenPair)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, string, model.Role) error); ok {
		r2 = rf(ctx, email, password, role)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewAccountService creates a new instance of AccountService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAccountService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountService {
	mock := &AccountService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
