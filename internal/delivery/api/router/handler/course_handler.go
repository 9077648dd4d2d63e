package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"academia/internal/delivery/api/response"
	"academia/internal/domain/entity"
	"academia/internal/domain/repository"
	"academia/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CourseHandler serves the course endpoints, including the composite tree writes.
type CourseHandler struct {
	catalogUC usecase.CatalogUsecase
	builderUC usecase.CourseBuilderUsecase
	logger    *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler
func NewCourseHandler(params CatalogHandlerParams) *CourseHandler {
	return &CourseHandler{
		catalogUC: params.CatalogUC,
		builderUC: params.BuilderUC,
		logger:    params.Logger,
	}
}

// CourseRequest creates or partially updates a course. Absent fields keep their value.
type CourseRequest struct {
	Title            *string          `json:"title" validate:"omitempty,max=200"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"short_description" validate:"omitempty,max=500"`
	CategoryID       *uint64          `json:"category_id"`
	InstructorID     *uint64          `json:"instructor_id"`
	CoverImageURL    *string          `json:"cover_image_url" validate:"omitempty,max=500"`
	IntroVideoURL    *string          `json:"intro_video_url" validate:"omitempty,max=500"`
	Modality         *string          `json:"modality" validate:"omitempty,oneof=async sync hybrid"`
	Level            *string          `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationHours    *int             `json:"duration_hours" validate:"omitempty,gte=0"`
	Price            *decimal.Decimal `json:"price"`
	IsFree           *bool            `json:"is_free"`
	Rating           *decimal.Decimal `json:"rating"`
	Featured         *bool            `json:"featured"`
	Active           *bool            `json:"active"`
}

func (r *CourseRequest) toInput() *usecase.CourseInput {
	if r == nil {
		return nil
	}

	input := &usecase.CourseInput{
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		CategoryID:       r.CategoryID,
		InstructorID:     r.InstructorID,
		CoverImageURL:    r.CoverImageURL,
		IntroVideoURL:    r.IntroVideoURL,
		DurationHours:    r.DurationHours,
		Price:            r.Price,
		IsFree:           r.IsFree,
		Rating:           r.Rating,
		Featured:         r.Featured,
		Active:           r.Active,
	}
	if r.Modality != nil {
		modality := entity.Modality(*r.Modality)
		input.Modality = &modality
	}
	if r.Level != nil {
		level := entity.Level(*r.Level)
		input.Level = &level
	}

	return input
}

// LessonPayloadRequest is one lesson of a composite write.
type LessonPayloadRequest struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	ContentType     string `json:"content_type" validate:"omitempty,oneof=video text quiz project"`
	VideoURL        string `json:"video_url"`
	DurationMinutes int    `json:"duration_minutes"`
	DurationSeconds int    `json:"duration_seconds"`
	Order           int    `json:"order"`
	IsFreePreview   bool   `json:"is_free_preview"`
	Active          *bool  `json:"active"`
}

// ModulePayloadRequest is one module of a composite write.
type ModulePayloadRequest struct {
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Order           int                    `json:"order"`
	DurationMinutes *int                   `json:"duration_minutes"`
	Expandable      *bool                  `json:"expandable"`
	Active          *bool                  `json:"active"`
	Lessons         []LessonPayloadRequest `json:"lessons" validate:"dive"`
}

func (r *ModulePayloadRequest) toPayload() usecase.ModulePayload {
	payload := usecase.ModulePayload{
		Title:           r.Title,
		Description:     r.Description,
		Order:           r.Order,
		DurationMinutes: r.DurationMinutes,
		Expandable:      r.Expandable,
		Active:          r.Active,
		Lessons:         make([]usecase.LessonPayload, 0, len(r.Lessons)),
	}
	for _, l := range r.Lessons {
		payload.Lessons = append(payload.Lessons, usecase.LessonPayload{
			Title:           l.Title,
			Content:         l.Content,
			ContentType:     entity.ContentType(l.ContentType),
			VideoURL:        l.VideoURL,
			DurationMinutes: l.DurationMinutes,
			DurationSeconds: l.DurationSeconds,
			Order:           l.Order,
			IsFreePreview:   l.IsFreePreview,
			Active:          l.Active,
		})
	}

	return payload
}

// FullCourseRequest is the body of the composite course writes.
// A nil Modules means "absent", an empty list means "no modules".
type FullCourseRequest struct {
	Course  *CourseRequest         `json:"course"`
	Modules []ModulePayloadRequest `json:"modules" validate:"dive"`
}

func (r *FullCourseRequest) toInput() *usecase.FullCourseInput {
	input := &usecase.FullCourseInput{Course: r.Course.toInput()}
	if r.Modules != nil {
		input.Modules = make([]usecase.ModulePayload, 0, len(r.Modules))
		for i := range r.Modules {
			input.Modules = append(input.Modules, r.Modules[i].toPayload())
		}
	}

	return input
}

// courseOrderFields maps the ordering query values to sort keys.
var courseOrderFields = map[string]repository.CourseOrderField{
	"title":      repository.CourseOrderTitle,
	"price":      repository.CourseOrderPrice,
	"created_at": repository.CourseOrderCreatedAt,
	"rating":     repository.CourseOrderRating,
}

func parseCourseFilter(c echo.Context) (repository.CourseFilter, error) {
	q := newQueryParser(c)
	filter := repository.CourseFilter{
		CategoryID:     q.uint64("category"),
		CategoryName:   q.string("category_name"),
		InstructorID:   q.uint64("instructor"),
		InstructorName: q.string("instructor_name"),
		MinPrice:       q.decimal("min_price"),
		MaxPrice:       q.decimal("max_price"),
		MinDuration:    q.int("min_duration"),
		MaxDuration:    q.int("max_duration"),
		MinRating:      q.decimal("min_rating"),
		IsFree:         q.bool("is_free"),
		Featured:       q.bool("featured"),
		Title:          q.string("title"),
		Search:         q.string("search"),
	}

	if level := entity.Level(q.string("level")); level != "" {
		if !level.IsValid() {
			q.errs.Add("level", "must be one of beginner, intermediate, advanced")
		}
		filter.Level = level
	}
	if modality := entity.Modality(q.string("modality")); modality != "" {
		if !modality.IsValid() {
			q.errs.Add("modality", "must be one of async, sync, hybrid")
		}
		filter.Modality = modality
	}
	if freeAndFeatured := q.bool("free_and_featured"); freeAndFeatured != nil {
		filter.FreeAndFeatured = *freeAndFeatured
	}

	if ordering := q.string("ordering"); ordering != "" {
		name, descending := strings.CutPrefix(ordering, "-")
		field, ok := courseOrderFields[name]
		if !ok {
			return filter, newOrderingError("title, price, created_at, rating")
		}
		filter.Order = repository.CourseOrder{Field: field, Descending: descending}
	}

	return filter, q.err()
}

// ListCourses lists one page of active courses matching the query filters.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	filter, err := parseCourseFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.catalogUC.ListCourses(c.Request().Context(), filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, newCourseResponses(output.Courses), output.Page, output.Total)
}

// GetCourse returns the full tree of an active course.
func (h *CourseHandler) GetCourse(c echo.Context) error {
	id, err := pathUUID(c, "uuid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	course, err := h.catalogUC.GetCourse(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCourseResponse(course, true))
}

// GetCourseStats returns the aggregate numbers of a course.
func (h *CourseHandler) GetCourseStats(c echo.Context) error {
	id, err := pathUUID(c, "uuid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.catalogUC.GetCourseStats(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCourseStatsResponse(stats))
}

// ListCoursesByInstructor lists one page of an instructor's active courses.
func (h *CourseHandler) ListCoursesByInstructor(c echo.Context) error {
	instructorID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.catalogUC.ListCoursesByInstructor(c.Request().Context(), instructorID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, newCourseResponses(output.Courses), output.Page, output.Total)
}

// CreateCourse creates a course without modules.
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	course, err := h.catalogUC.CreateCourse(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCourseResponse(course, false))
}

// UpdateCourse partially updates a course.
func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	id, err := pathUUID(c, "uuid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	course, err := h.catalogUC.UpdateCourse(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCourseResponse(course, false))
}

// DeactivateCourse soft-deletes a course.
func (h *CourseHandler) DeactivateCourse(c echo.Context) error {
	id, err := pathUUID(c, "uuid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeactivateCourse(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateFullCourse creates a course with its modules and lessons in one transaction.
func (h *CourseHandler) CreateFullCourse(c echo.Context) error {
	var req FullCourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.builderUC.CreateFullCourse(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCompositeWriteResponse(output))
}

// ReplaceFullCourse handles PUT and PATCH on a course tree. Present modules replace the whole tree.
func (h *CourseHandler) ReplaceFullCourse(c echo.Context) error {
	id, err := pathUUID(c, "uuid")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req FullCourseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.builderUC.ReplaceFullCourse(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCompositeWriteResponse(output))
}

func newCompositeWriteResponse(output *usecase.FullCourseOutput) *CompositeWriteResponse {
	return &CompositeWriteResponse{
		Course:         newCourseResponse(output.Course, true),
		ModulesCreated: output.ModulesCreated,
		ModulesDeleted: output.ModulesDeleted,
		LessonsCreated: output.LessonsCreated,
	}
}
