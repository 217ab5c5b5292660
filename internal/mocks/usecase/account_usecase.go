// Package usecase provides testify mocks for the application usecase contracts.
package usecase

import (
	"context"

	"passport/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a mock implementation of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

// NewMockAccountUsecase creates a new mock wired to the test lifecycle.
func NewMockAccountUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	ret := m.Called(ctx, input)

	var output *usecase.RegisterOutput
	if ret.Get(0) != nil {
		output = ret.Get(0).(*usecase.RegisterOutput)
	}

	return output, ret.Error(1)
}

func (m *MockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := m.Called(ctx, input)

	var output *usecase.LoginOutput
	if ret.Get(0) != nil {
		output = ret.Get(0).(*usecase.LoginOutput)
	}

	return output, ret.Error(1)
}

func (m *MockAccountUsecase) GetAccount(ctx context.Context, input *usecase.GetAccountInput) (*usecase.GetAccountOutput, error) {
	ret := m.Called(ctx, input)

	var output *usecase.GetAccountOutput
	if ret.Get(0) != nil {
		output = ret.Get(0).(*usecase.GetAccountOutput)
	}

	return output, ret.Error(1)
}

func (m *MockAccountUsecase) UpdateAccount(ctx context.Context, input *usecase.UpdateAccountInput) (*usecase.UpdateAccountOutput, error) {
	ret := m.Called(ctx, input)

	var output *usecase.UpdateAccountOutput
	if ret.Get(0) != nil {
		output = ret.Get(0).(*usecase.UpdateAccountOutput)
	}

	return output, ret.Error(1)
}
