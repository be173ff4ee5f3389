package countries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/uceva/country-service/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new country repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// List returns all countries in id order
func (r *repository) List(ctx context.Context) ([]models.Country, error) {
	countries := []models.Country{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

// FindByID returns a country by ID
func (r *repository) FindByID(ctx context.Context, id int64) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return &country, nil
}

// Save inserts a country without id, or overwrites the attributes of the row holding its
// id. When no such row exists the country is inserted and gets a fresh id.
func (r *repository) Save(ctx context.Context, country *models.Country) error {
	if country.Attributes == nil {
		country.Attributes = models.Attributes{}
	}

	if !country.HasID() {
		return r.db.WithContext(ctx).Create(country).Error
	}

	id := country.ID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(country).Select("attributes", "updated_at").Updates(country)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		country.ID = 0
		return tx.Create(country).Error
	})
	if err != nil {
		// rolled back: the caller keeps the id it asked for
		country.ID = id
	}
	return err
}

// Delete deletes the given country
func (r *repository) Delete(ctx context.Context, country *models.Country) error {
	if !country.HasID() {
		return models.ErrInvalidCountryID
	}
	return r.db.WithContext(ctx).Delete(country).Error
}
