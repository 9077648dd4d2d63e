package handler

import (
	"log/slog"
	"net/http"

	"academia/internal/delivery/api/response"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ModuleHandler serves the module endpoints.
type ModuleHandler struct {
	catalogUC usecase.CatalogUsecase
	builderUC usecase.CourseBuilderUsecase
	logger    *slog.Logger
}

// NewModuleHandler is the constructor for ModuleHandler
func NewModuleHandler(params CatalogHandlerParams) *ModuleHandler {
	return &ModuleHandler{
		catalogUC: params.CatalogUC,
		builderUC: params.BuilderUC,
		logger:    params.Logger,
	}
}

// ModuleRequest creates or partially updates a module.
type ModuleRequest struct {
	CourseID        *uint64 `json:"course_id"`
	Title           *string `json:"title" validate:"omitempty,max=200"`
	Description     *string `json:"description"`
	Order           *int    `json:"order" validate:"omitempty,gte=0"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gte=0"`
	Expandable      *bool   `json:"expandable"`
	Active          *bool   `json:"active"`
}

func (r *ModuleRequest) toInput() *usecase.ModuleInput {
	return &usecase.ModuleInput{
		CourseID:        r.CourseID,
		Title:           r.Title,
		Description:     r.Description,
		Order:           r.Order,
		DurationMinutes: r.DurationMinutes,
		Expandable:      r.Expandable,
		Active:          r.Active,
	}
}

// ModuleWithLessonsRequest creates a module and its lessons in one transaction.
type ModuleWithLessonsRequest struct {
	CourseID        uint64                 `json:"course_id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Order           int                    `json:"order"`
	DurationMinutes *int                   `json:"duration_minutes"`
	Expandable      *bool                  `json:"expandable"`
	Active          *bool                  `json:"active"`
	Lessons         []LessonPayloadRequest `json:"lessons" validate:"dive"`
}

func (r *ModuleWithLessonsRequest) toPayload() usecase.ModulePayload {
	module := ModulePayloadRequest{
		Title:           r.Title,
		Description:     r.Description,
		Order:           r.Order,
		DurationMinutes: r.DurationMinutes,
		Expandable:      r.Expandable,
		Active:          r.Active,
		Lessons:         r.Lessons,
	}

	return module.toPayload()
}

// ListModules lists active modules, optionally of one course.
func (h *ModuleHandler) ListModules(c echo.Context) error {
	q := newQueryParser(c)
	filter := repository.ModuleFilter{
		CourseID:   q.uint64("course"),
		Search:     q.string("search"),
		ActiveOnly: true,
	}
	if err := q.err(); err != nil {
		return response.HandleAppError(c, err)
	}

	modules, err := h.catalogUC.ListModules(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newModuleResponses(modules))
}

// GetModule returns one module with its lessons.
func (h *ModuleHandler) GetModule(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	module, err := h.catalogUC.GetModule(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newModuleResponse(module))
}

// CreateModule creates a module without lessons.
func (h *ModuleHandler) CreateModule(c echo.Context) error {
	var req ModuleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid module input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	module, err := h.catalogUC.CreateModule(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newModuleResponse(module))
}

// CreateModuleWithLessons creates a module together with its lessons.
func (h *ModuleHandler) CreateModuleWithLessons(c echo.Context) error {
	var req ModuleWithLessonsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid module input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}
	if req.CourseID == 0 {
		return response.HandleAppError(c, domainerrors.NewRequestShapeError("course_id", "is required"))
	}

	payload := req.toPayload()
	output, err := h.builderUC.CreateModuleWithLessons(c.Request().Context(), &usecase.ModuleWithLessonsInput{
		CourseID: req.CourseID,
		Module:   &payload,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &ModuleWithLessonsResponse{
		Module:         newModuleResponse(output.Module),
		LessonsCreated: output.LessonsCreated,
	})
}

// UpdateModule partially updates a module.
func (h *ModuleHandler) UpdateModule(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ModuleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid module input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	module, err := h.catalogUC.UpdateModule(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newModuleResponse(module))
}

// DeactivateModule soft-deletes a module.
func (h *ModuleHandler) DeactivateModule(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeactivateModule(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
