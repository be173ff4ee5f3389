package countries

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uceva/country-service/app/api"
	"github.com/uceva/country-service/internal/validator"
	"github.com/uceva/country-service/models"
)

// Handler handles HTTP requests for countries
type Handler struct {
	service Service
}

// NewHandler creates a new country handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ListCountries godoc
// @Summary List all countries
// @Description Get every stored country in id order
// @Tags paises
// @Produce json
// @Success 200 {array} models.Country
// @Failure 500 {object} api.ListFailure
// @Router /api/v1/country-service/paises [get]
func (h *Handler) ListCountries(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		api.ListFailureResponse(c, err, map[string]interface{}{"operation": "list"})
		return
	}

	c.JSON(http.StatusOK, countries)
}

// GetCountry godoc
// @Summary Get country by ID
// @Description Get a single country by its identifier
// @Tags paises
// @Produce json
// @Param id path int true "Country ID"
// @Success 200 {object} models.Country
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500
// @Router /api/v1/country-service/paises/{id} [get]
func (h *Handler) GetCountry(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	country, err := h.service.GetCountry(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Country")
			return
		}
		api.AbortInternal(c, err, map[string]interface{}{"operation": "get", "id": id})
		return
	}

	c.JSON(http.StatusOK, country)
}

// CreateCountry godoc
// @Summary Create a country
// @Description Store a new country. Any id in the body is ignored and a new one is assigned.
// @Tags paises
// @Accept json
// @Produce json
// @Param request body models.Country true "Country attributes"
// @Success 200 {object} models.Country
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500
// @Router /api/v1/country-service/pais [post]
func (h *Handler) CreateCountry(c *gin.Context) {
	var country models.Country
	if err := api.ShouldBindStrictJSON(c, &country); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	created, err := h.service.CreateCountry(c.Request.Context(), &country)
	if err != nil {
		h.handleSaveError(c, err, "create")
		return
	}

	c.JSON(http.StatusOK, created)
}

// UpdateCountry godoc
// @Summary Update a country
// @Description Overwrite the country identified by the id in the body. An unknown or missing id stores a new country.
// @Tags paises
// @Accept json
// @Produce json
// @Param request body models.Country true "Country with id"
// @Success 200 {object} models.Country
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500
// @Router /api/v1/country-service/pais [put]
func (h *Handler) UpdateCountry(c *gin.Context) {
	var country models.Country
	if err := api.ShouldBindStrictJSON(c, &country); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	updated, err := h.service.UpdateCountry(c.Request.Context(), &country)
	if err != nil {
		h.handleSaveError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteCountry godoc
// @Summary Delete a country
// @Description Look a country up by id and delete it
// @Tags paises
// @Param id path int true "Country ID"
// @Success 200
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500
// @Router /api/v1/country-service/paises/{id} [delete]
func (h *Handler) DeleteCountry(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCountry(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Country")
			return
		}
		api.AbortInternal(c, err, map[string]interface{}{"operation": "delete", "id": id})
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		api.BadRequestResponse(c, "Invalid country ID format")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleSaveError(c *gin.Context, err error, operation string) {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		api.ValidationErrorResponse(c, vErr.Errors)
		return
	}
	api.AbortInternal(c, err, map[string]interface{}{"operation": operation})
}
