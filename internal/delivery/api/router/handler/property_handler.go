package handler

import (
	"log/slog"
	"net/http"

	"estate/internal/delivery/api/response"
	"estate/internal/delivery/api/validator"
	"estate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PropertyHandlerParams holds dependencies for PropertyHandler, injected by Fx.
type PropertyHandlerParams struct {
	fx.In

	PropertyUC usecase.PropertyUsecase
	Logger     *slog.Logger
}

// PropertyHandler serves the JSON property API
type PropertyHandler struct {
	propertyUC usecase.PropertyUsecase
	logger     *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler
func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: params.PropertyUC,
		logger:     params.Logger,
	}
}

// ListPropertiesRequest represents the query string of GET /api/v1/properties
type ListPropertiesRequest struct {
	Location         string `query:"location"`
	PropertyType     string `query:"property_type"`
	MinPrice         string `query:"min_price" validate:"omitempty,numeric"`
	MaxPrice         string `query:"max_price" validate:"omitempty,numeric"`
	MinSquareFootage string `query:"min_square_footage" validate:"omitempty,numeric"`
	MaxSquareFootage string `query:"max_square_footage" validate:"omitempty,numeric"`
	SortBy           string `query:"sort_by" validate:"omitempty,oneof=price square_footage"`
	Order            string `query:"order" validate:"omitempty,oneof=ascending descending"`
}

// SaveSelectionRequest represents the request body for saving a selection
type SaveSelectionRequest struct {
	IDs []string `json:"ids" validate:"required,dive,uuid4"`
}

// ListProperties handles filtering and sorting the property collection
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	var req ListPropertiesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	query, err := req.toQuery()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	props, err := h.propertyUC.Search(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, newPropertyResponses(props))
}

// SaveSelection handles writing the chosen properties to the output document
func (h *PropertyHandler) SaveSelection(c echo.Context) error {
	var req SaveSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	ids, err := parseIDs(req.IDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.propertyUC.SaveSelection(c.Request().Context(), ids)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

func (req ListPropertiesRequest) toQuery() (usecase.PropertyQuery, error) {
	query := usecase.PropertyQuery{
		Location:     req.Location,
		PropertyType: req.PropertyType,
		SortBy:       req.SortBy,
		Order:        req.Order,
	}

	var err error
	if query.MinPrice, err = parseBound("min_price", req.MinPrice); err != nil {
		return query, err
	}
	if query.MaxPrice, err = parseBound("max_price", req.MaxPrice); err != nil {
		return query, err
	}
	if query.MinSquareFootage, err = parseBound("min_square_footage", req.MinSquareFootage); err != nil {
		return query, err
	}
	if query.MaxSquareFootage, err = parseBound("max_square_footage", req.MaxSquareFootage); err != nil {
		return query, err
	}

	return query, nil
}

func validationError(c echo.Context, err error) error {
	var fieldErrs validator.FieldErrors
	if errors.As(err, &fieldErrs) {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid request parameters", fieldErrs.Details())
	}

	return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
}

// HealthCheck reports that the server is up
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
