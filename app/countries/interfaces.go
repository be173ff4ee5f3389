package countries

import (
	"context"

	"github.com/uceva/country-service/models"
)

// Repository defines the interface for country data access
type Repository interface {
	List(ctx context.Context) ([]models.Country, error)
	FindByID(ctx context.Context, id int64) (*models.Country, error)
	Save(ctx context.Context, country *models.Country) error
	Delete(ctx context.Context, country *models.Country) error
}

// Service defines the interface for country business logic
type Service interface {
	ListCountries(ctx context.Context) ([]models.Country, error)
	GetCountry(ctx context.Context, id int64) (*models.Country, error)
	CreateCountry(ctx context.Context, country *models.Country) (*models.Country, error)
	UpdateCountry(ctx context.Context, country *models.Country) (*models.Country, error)
	DeleteCountry(ctx context.Context, id int64) error
}
