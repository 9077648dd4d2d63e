package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"academia/internal/delivery/api/response"
	"academia/internal/domain/repository"
	"academia/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for the catalog handlers, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	BuilderUC usecase.CourseBuilderUsecase
	Logger    *slog.Logger
}

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CatalogHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryRequest creates or partially updates a category.
type CategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	ColorHex    *string `json:"color_hex" validate:"omitempty,hexcolor"`
	Active      *bool   `json:"active"`
}

func (r *CategoryRequest) toInput() *usecase.CategoryInput {
	return &usecase.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		ColorHex:    r.ColorHex,
		Active:      r.Active,
	}
}

// ListCategories lists active categories, optionally searched and ordered.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	filter := repository.CategoryFilter{Search: strings.TrimSpace(c.QueryParam("search"))}

	ordering := strings.TrimSpace(c.QueryParam("ordering"))
	field, descending := strings.CutPrefix(ordering, "-")
	switch repository.CategoryOrder(field) {
	case "":
	case repository.CategoryOrderName, repository.CategoryOrderCreatedAt:
		filter.OrderBy = repository.CategoryOrder(field)
		filter.Descending = descending
	default:
		return response.HandleAppError(c, newOrderingError("name, created_at"))
	}

	categories, err := h.catalogUC.ListCategories(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponses(categories))
}

// GetCategory returns one category.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponse(category))
}

// ListCategoryCourses lists one page of the active courses of a category.
func (h *CategoryHandler) ListCategoryCourses(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.catalogUC.ListCategoryCourses(c.Request().Context(), id, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, newCourseResponses(output.Courses), output.Page, output.Total)
}

// CreateCategory creates a category.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCategoryResponse(category))
}

// UpdateCategory updates the fields present in the body.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponse(category))
}

// DeactivateCategory soft-deletes a category.
func (h *CategoryHandler) DeactivateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeactivateCategory(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
