package countries

import (
	"context"

	"github.com/uceva/country-service/internal/validator"
	"github.com/uceva/country-service/models"
)

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new country service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

// ListCountries returns every stored country. The result is never nil.
func (s *service) ListCountries(ctx context.Context) ([]models.Country, error) {
	countries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if countries == nil {
		countries = []models.Country{}
	}
	return countries, nil
}

// GetCountry returns a country by ID
func (s *service) GetCountry(ctx context.Context, id int64) (*models.Country, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateCountry stores a new country. Any id sent by the client is ignored.
func (s *service) CreateCountry(ctx context.Context, country *models.Country) (*models.Country, error) {
	country.ID = 0
	return s.save(ctx, country)
}

// UpdateCountry overwrites the country holding country.ID. Create and update share one
// save, so an unknown or missing id results in a new record.
func (s *service) UpdateCountry(ctx context.Context, country *models.Country) (*models.Country, error) {
	return s.save(ctx, country)
}

// DeleteCountry looks the country up and deletes it
func (s *service) DeleteCountry(ctx context.Context, id int64) error {
	country, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, country)
}

func (s *service) save(ctx context.Context, country *models.Country) (*models.Country, error) {
	v := validator.New()
	if !country.Validate(v) {
		return nil, validator.NewValidationError("invalid country attributes", v.Errors)
	}

	if err := s.repo.Save(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}
