// Package repository provides testify mocks for the persistence contracts.
package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a new mock wired to the test lifecycle.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	ret := m.Called(ctx, id)

	var account *entity.Account
	if ret.Get(0) != nil {
		account = ret.Get(0).(*entity.Account)
	}

	return account, ret.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	ret := m.Called(ctx, email)

	var account *entity.Account
	if ret.Get(0) != nil {
		account = ret.Get(0).(*entity.Account)
	}

	return account, ret.Error(1)
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateByID(ctx context.Context, id uuid.UUID, update entity.PartialUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}
