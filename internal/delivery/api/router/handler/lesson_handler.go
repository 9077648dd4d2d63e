package handler

import (
	"log/slog"
	"net/http"

	"academia/internal/delivery/api/response"
	"academia/internal/domain/entity"
	"academia/internal/domain/repository"
	"academia/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LessonHandler serves the lesson endpoints.
type LessonHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewLessonHandler is the constructor for LessonHandler
func NewLessonHandler(params CatalogHandlerParams) *LessonHandler {
	return &LessonHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// LessonRequest creates or partially updates a lesson.
type LessonRequest struct {
	ModuleID        *uint64 `json:"module_id"`
	Title           *string `json:"title" validate:"omitempty,max=200"`
	Content         *string `json:"content"`
	ContentType     *string `json:"content_type" validate:"omitempty,oneof=video text quiz project"`
	VideoURL        *string `json:"video_url" validate:"omitempty,max=500"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gte=0"`
	DurationSeconds *int    `json:"duration_seconds" validate:"omitempty,gte=0"`
	Order           *int    `json:"order" validate:"omitempty,gte=0"`
	IsFreePreview   *bool   `json:"is_free_preview"`
	Active          *bool   `json:"active"`
}

func (r *LessonRequest) toInput() *usecase.LessonInput {
	input := &usecase.LessonInput{
		ModuleID:        r.ModuleID,
		Title:           r.Title,
		Content:         r.Content,
		VideoURL:        r.VideoURL,
		DurationMinutes: r.DurationMinutes,
		DurationSeconds: r.DurationSeconds,
		Order:           r.Order,
		IsFreePreview:   r.IsFreePreview,
		Active:          r.Active,
	}
	if r.ContentType != nil {
		contentType := entity.ContentType(*r.ContentType)
		input.ContentType = &contentType
	}

	return input
}

// ListLessons lists active lessons, optionally of one module.
func (h *LessonHandler) ListLessons(c echo.Context) error {
	q := newQueryParser(c)
	filter := repository.LessonFilter{
		ModuleID:   q.uint64("module"),
		Search:     q.string("search"),
		ActiveOnly: true,
	}
	if err := q.err(); err != nil {
		return response.HandleAppError(c, err)
	}

	lessons, err := h.catalogUC.ListLessons(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLessonResponses(lessons))
}

// GetLesson returns one lesson.
func (h *LessonHandler) GetLesson(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	lesson, err := h.catalogUC.GetLesson(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLessonResponse(lesson))
}

// CreateLesson creates a lesson.
func (h *LessonHandler) CreateLesson(c echo.Context) error {
	var req LessonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid lesson input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	lesson, err := h.catalogUC.CreateLesson(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newLessonResponse(lesson))
}

// UpdateLesson partially updates a lesson.
func (h *LessonHandler) UpdateLesson(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req LessonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid lesson input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	lesson, err := h.catalogUC.UpdateLesson(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLessonResponse(lesson))
}

// DeactivateLesson soft-deletes a lesson.
func (h *LessonHandler) DeactivateLesson(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeactivateLesson(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
