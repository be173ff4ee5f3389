package countries

import (
	"github.com/gin-gonic/gin"

	"github.com/uceva/country-service/internal/deps"
)

const (
	CountryRepoKey    = "country_repository"
	CountryServiceKey = "country_service"
)

// Mount mounts the country routes
func Mount(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	r.GET("/paises", handler.ListCountries)
	r.GET("/paises/:id", handler.GetCountry)
	r.POST("/pais", handler.CreateCountry)
	r.PUT("/pais", handler.UpdateCountry)
	r.DELETE("/paises/:id", handler.DeleteCountry)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(CountryRepoKey, repo)
}

// createHandler reuses a registered service or builds one on the registered repository.
func createHandler(container *deps.Container) *Handler {
	svc, ok := container.GetService(CountryServiceKey).(Service)
	if !ok {
		repo := container.GetRepository(CountryRepoKey).(Repository)
		svc = NewService(repo)
		container.RegisterService(CountryServiceKey, svc)
	}

	return NewHandler(svc)
}
