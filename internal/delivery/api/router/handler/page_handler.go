package handler

import (
	"log/slog"
	"net/http"

	"estate/internal/delivery/api/render"
	"estate/internal/delivery/api/validator"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	PropertyUC usecase.PropertyUsecase
	Logger     *slog.Logger
}

// PageHandler serves the HTML listing pages
type PageHandler struct {
	propertyUC usecase.PropertyUsecase
	logger     *slog.Logger
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		propertyUC: params.PropertyUC,
		logger:     params.Logger,
	}
}

// IndexPage is the data rendered by the listing page
type IndexPage struct {
	Properties    []PropertyResponse
	PropertyTypes []string
	Error         string
}

// LocationForm is posted by the location filter
type LocationForm struct {
	Location string `form:"location" validate:"required"`
}

// PriceForm is posted by the price filter. An empty maximum means the highest stored price.
type PriceForm struct {
	MinPrice string `form:"min_price" validate:"omitempty,numeric"`
	MaxPrice string `form:"max_price" validate:"omitempty,numeric"`
}

// SquareFootageForm is posted by the square footage filter
type SquareFootageForm struct {
	MinSquareFootage string `form:"min_square_footage" validate:"omitempty,numeric"`
	MaxSquareFootage string `form:"max_square_footage" validate:"omitempty,numeric"`
}

// PropertyTypeForm is posted by the property type filter
type PropertyTypeForm struct {
	PropertyType string `form:"property_type" validate:"required"`
}

// SortForm is posted by the sort control
type SortForm struct {
	SortingAttribute string `form:"sorting_attribute" validate:"required,oneof=price square_footage"`
	SortingType      string `form:"sorting_type" validate:"omitempty,oneof=ascending descending"`
}

// SelectionForm is posted by the listing table
type SelectionForm struct {
	SelectedProperties []string `form:"selected_properties" validate:"dive,uuid4"`
}

// Index lists every property
func (h *PageHandler) Index(c echo.Context) error {
	return h.renderIndex(c, h.propertyUC.ListProperties(c.Request().Context()))
}

// FilterByLocation lists properties at the posted location
func (h *PageHandler) FilterByLocation(c echo.Context) error {
	var form LocationForm
	if err := h.bindForm(c, &form); err != nil {
		return h.renderError(c, err)
	}

	return h.renderIndex(c, h.propertyUC.FilterByLocation(c.Request().Context(), form.Location))
}

// FilterByPrice lists properties in the posted price range
func (h *PageHandler) FilterByPrice(c echo.Context) error {
	var form PriceForm
	if err := h.bindForm(c, &form); err != nil {
		return h.renderError(c, err)
	}

	minPrice, err := parseBound("min_price", form.MinPrice)
	if err != nil {
		return h.renderError(c, err)
	}
	maxPrice, err := parseBound("max_price", form.MaxPrice)
	if err != nil {
		return h.renderError(c, err)
	}

	props, err := h.propertyUC.FilterByPrice(c.Request().Context(), minPrice, maxPrice)
	if err != nil {
		return h.renderError(c, err)
	}

	return h.renderIndex(c, props)
}

// FilterBySquareFootage lists properties in the posted square footage range
func (h *PageHandler) FilterBySquareFootage(c echo.Context) error {
	var form SquareFootageForm
	if err := h.bindForm(c, &form); err != nil {
		return h.renderError(c, err)
	}

	minFootage, err := parseBound("min_square_footage", form.MinSquareFootage)
	if err != nil {
		return h.renderError(c, err)
	}
	maxFootage, err := parseBound("max_square_footage", form.MaxSquareFootage)
	if err != nil {
		return h.renderError(c, err)
	}

	props, err := h.propertyUC.FilterBySquareFootage(c.Request().Context(), minFootage, maxFootage)
	if err != nil {
		return h.renderError(c, err)
	}

	return h.renderIndex(c, props)
}

// FilterByPropertyType lists properties of the posted type
func (h *PageHandler) FilterByPropertyType(c echo.Context) error {
	var form PropertyTypeForm
	if err := h.bindForm(c, &form); err != nil {
		return h.renderError(c, err)
	}

	return h.renderIndex(c, h.propertyUC.FilterByPropertyType(c.Request().Context(), form.PropertyType))
}

// Sort lists every property in the posted order
func (h *PageHandler) Sort(c echo.Context) error {
	var form SortForm
	if err := h.bindForm(c, &form); err != nil {
		return h.renderError(c, err)
	}

	return h.renderIndex(c, h.propertyUC.SortProperties(c.Request().Context(), form.SortingAttribute, form.SortingType))
}

// SaveSelection writes the checked properties and shows the confirmation page
func (h *PageHandler) SaveSelection(c echo.Context) error {
	var form SelectionForm
	if err := h.bindForm(c, &form); err != nil {
		return h.renderError(c, err)
	}

	ids, err := parseIDs(form.SelectedProperties)
	if err != nil {
		return h.renderError(c, err)
	}

	result, err := h.propertyUC.SaveSelection(c.Request().Context(), ids)
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Render(http.StatusOK, render.PageSuccess, result)
}

func (h *PageHandler) bindForm(c echo.Context, form any) error {
	if err := c.Bind(form); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed form data")
	}

	if err := c.Validate(form); err != nil {
		var fieldErrs validator.FieldErrors
		if errors.As(err, &fieldErrs) {
			return domainerrors.ErrValidationFailed.WithDetails(fieldErrs.Error())
		}

		return errors.WithStack(err)
	}

	return nil
}

func (h *PageHandler) renderIndex(c echo.Context, props []entity.Property) error {
	return c.Render(http.StatusOK, render.PageIndex, h.indexPage(props, ""))
}

// renderError shows client errors on the listing page; server errors go to the error middleware.
func (h *PageHandler) renderError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
		return err
	}

	message := appErr.Message()
	if d := appErr.Details(); d != "" {
		message += ": " + d
	}

	return c.Render(appErr.HTTPCode(), render.PageIndex,
		h.indexPage(h.propertyUC.ListProperties(c.Request().Context()), message))
}

func (h *PageHandler) indexPage(props []entity.Property, message string) IndexPage {
	types := make([]string, 0, len(entity.PropertyTypes))
	for _, t := range entity.PropertyTypes {
		types = append(types, t.String())
	}

	return IndexPage{
		Properties:    newPropertyResponses(props),
		PropertyTypes: types,
		Error:         message,
	}
}
