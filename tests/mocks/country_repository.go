package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/uceva/country-service/models"
)

// MockCountryRepository is a testify mock of the country repository.
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) List(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockCountryRepository) FindByID(ctx context.Context, id int64) (*models.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockCountryRepository) Save(ctx context.Context, country *models.Country) error {
	return m.Called(ctx, country).Error(0)
}

func (m *MockCountryRepository) Delete(ctx context.Context, country *models.Country) error {
	return m.Called(ctx, country).Error(0)
}
