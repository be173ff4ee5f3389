package countries

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/uceva/country-service/models"
	"github.com/uceva/country-service/tests/suites"
)

type CountriesRepositoryTestSuite struct {
	suites.RepositoryTestSuite
	repo Repository
}

func (suite *CountriesRepositoryTestSuite) SetupSuite() {
	if testing.Short() {
		suite.T().Skip("Skipping database integration test")
	}

	suite.AutoMigrate = true

	suite.RepositoryTestSuite.SetupSuite()

	suite.repo = NewRepository(suite.DB)
}

func TestCountriesRepository(t *testing.T) {
	suite.Run(t, new(CountriesRepositoryTestSuite))
}

func (suite *CountriesRepositoryTestSuite) createCountry(attrs models.Attributes) *models.Country {
	country := &models.Country{Attributes: attrs}
	suite.Require().NoError(suite.repo.Save(context.Background(), country))
	suite.Require().True(country.HasID())
	return country
}

func (suite *CountriesRepositoryTestSuite) TestMigrations_CreateCountriesTable() {
	suite.True(suite.TableExists("countries"))
	suite.True(suite.DB.Migrator().HasColumn(&models.Country{}, "attributes"))
}

func (suite *CountriesRepositoryTestSuite) TestSave_AssignsID() {
	first := suite.createCountry(models.Attributes{"name": "Colombia"})
	second := suite.createCountry(models.Attributes{"name": "Peru"})

	suite.NotEqual(first.ID, second.ID)
	suite.Equal(int64(2), suite.CountRecords("countries"))
}

func (suite *CountriesRepositoryTestSuite) TestRoundTrip() {
	ctx := context.Background()
	attrs := models.Attributes{
		"name":       "Colombia",
		"code":       "COL",
		"population": json.Number("52000000"),
		"landlocked": false,
		"motto":      nil,
	}
	created := suite.createCountry(attrs)

	found, err := suite.repo.FindByID(ctx, created.ID)
	suite.AssertNoDBError(err)
	suite.Equal(created.ID, found.ID)
	suite.Equal(attrs, found.Attributes)
	suite.False(found.CreatedAt.IsZero())
}

func (suite *CountriesRepositoryTestSuite) TestList_OrderedByID() {
	ctx := context.Background()
	suite.createCountry(models.Attributes{"name": "Colombia"})
	suite.createCountry(models.Attributes{"name": "Peru"})
	suite.createCountry(models.Attributes{"name": "Chile"})

	countries, err := suite.repo.List(ctx)
	suite.AssertNoDBError(err)
	suite.Require().Len(countries, 3)
	for i := 1; i < len(countries); i++ {
		suite.Less(countries[i-1].ID, countries[i].ID)
	}
	suite.Equal("Chile", countries[2].Attributes["name"])
}

func (suite *CountriesRepositoryTestSuite) TestList_Empty() {
	countries, err := suite.repo.List(context.Background())
	suite.AssertNoDBError(err)
	suite.NotNil(countries)
	suite.Empty(countries)
}

func (suite *CountriesRepositoryTestSuite) TestUpdate_ThenFind() {
	ctx := context.Background()
	created := suite.createCountry(models.Attributes{"name": "Columbia"})

	update := &models.Country{ID: created.ID, Attributes: models.Attributes{"name": "Colombia", "code": "COL"}}
	suite.AssertNoDBError(suite.repo.Save(ctx, update))
	suite.Equal(created.ID, update.ID)

	found, err := suite.repo.FindByID(ctx, created.ID)
	suite.AssertNoDBError(err)
	suite.Equal(models.Attributes{"name": "Colombia", "code": "COL"}, found.Attributes)
	suite.Equal(int64(1), suite.CountRecords("countries"))
}

func (suite *CountriesRepositoryTestSuite) TestSave_StaleIDCreates() {
	ctx := context.Background()

	country := &models.Country{ID: 4242, Attributes: models.Attributes{"name": "Bolivia"}}
	suite.AssertNoDBError(suite.repo.Save(ctx, country))

	suite.NotEqual(int64(4242), country.ID)
	suite.Equal(int64(1), suite.CountRecords("countries"))

	_, err := suite.repo.FindByID(ctx, 4242)
	suite.ErrorIs(err, models.ErrRecordNotFound)
}

func (suite *CountriesRepositoryTestSuite) TestDelete_ThenFind() {
	ctx := context.Background()
	created := suite.createCountry(models.Attributes{"name": "Ecuador"})

	suite.AssertNoDBError(suite.repo.Delete(ctx, created))

	found, err := suite.repo.FindByID(ctx, created.ID)
	suite.AssertDBError(err)
	suite.ErrorIs(err, models.ErrRecordNotFound)
	suite.Nil(found)
	suite.Equal(int64(0), suite.CountRecords("countries"))
}
