package handler

import (
	"log/slog"
	"net/http"
	"time"

	"academia/internal/delivery/api/middleware"
	"academia/internal/delivery/api/response"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InstructorHandlerParams holds dependencies for InstructorHandler, injected by Fx.
type InstructorHandlerParams struct {
	fx.In

	InstructorUC usecase.InstructorUsecase
	Logger       *slog.Logger
}

// InstructorHandler serves instructor administration and the public directory.
type InstructorHandler struct {
	instructorUC usecase.InstructorUsecase
	logger       *slog.Logger
}

// NewInstructorHandler is the constructor for InstructorHandler
func NewInstructorHandler(params InstructorHandlerParams) *InstructorHandler {
	return &InstructorHandler{
		instructorUC: params.InstructorUC,
		logger:       params.Logger,
	}
}

// CreateInstructorRequest creates a user and its instructor record at once.
type CreateInstructorRequest struct {
	Email           string `json:"email" validate:"required,email,max=254"`
	Username        string `json:"username" validate:"required,max=150"`
	FirstName       string `json:"first_name" validate:"required,max=150"`
	LastName        string `json:"last_name" validate:"required,max=150"`
	BirthDate       string `json:"birth_date" validate:"required"`
	Country         string `json:"country" validate:"required,max=100"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`

	AvatarURL   string `json:"avatar_url" validate:"max=500"`
	Biography   string `json:"biography"`
	Phone       string `json:"phone" validate:"max=17"`
	LinkedInURL string `json:"linkedin_url" validate:"max=500"`

	Specialty         string `json:"specialty" validate:"required,max=200"`
	ExtendedBio       string `json:"extended_bio" validate:"required"`
	ExperienceYears   *int   `json:"experience_years" validate:"required,gte=0,lte=60"`
	ProfessionalTitle string `json:"professional_title" validate:"max=200"`
	Certifications    string `json:"certifications"`
	GitHubURL         string `json:"github_url" validate:"max=500"`
}

// UpdateInstructorRequest partially updates the instructor record.
type UpdateInstructorRequest struct {
	Specialty         *string `json:"specialty" validate:"omitempty,max=200"`
	ExtendedBio       *string `json:"extended_bio"`
	ExperienceYears   *int    `json:"experience_years" validate:"omitempty,gte=0,lte=60"`
	ProfessionalTitle *string `json:"professional_title" validate:"omitempty,max=200"`
	Certifications    *string `json:"certifications"`
	GitHubURL         *string `json:"github_url" validate:"omitempty,max=500"`
}

// CreateInstructor creates an instructor account.
func (h *InstructorHandler) CreateInstructor(c echo.Context) error {
	var req CreateInstructorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid instructor input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	errs := domainerrors.FieldErrors{}
	var birthDate time.Time
	if parsed := parseDate(errs, "birth_date", &req.BirthDate); parsed != nil {
		birthDate = *parsed
	}
	if err := errs.Err(); err != nil {
		return response.HandleAppError(c, err)
	}

	instructor, err := h.instructorUC.CreateInstructor(c.Request().Context(), middleware.GetActor(c), &usecase.CreateInstructorInput{
		Email:             req.Email,
		Username:          req.Username,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		BirthDate:         birthDate,
		Country:           req.Country,
		Password:          req.Password,
		ConfirmPassword:   req.ConfirmPassword,
		AvatarURL:         req.AvatarURL,
		Biography:         req.Biography,
		Phone:             req.Phone,
		LinkedInURL:       req.LinkedInURL,
		Specialty:         req.Specialty,
		ExtendedBio:       req.ExtendedBio,
		ExperienceYears:   *req.ExperienceYears,
		ProfessionalTitle: req.ProfessionalTitle,
		Certifications:    req.Certifications,
		GitHubURL:         req.GitHubURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newInstructorResponse(instructor, true))
}

// ListInstructors lists every instructor for administrators.
func (h *InstructorHandler) ListInstructors(c echo.Context) error {
	instructors, err := h.instructorUC.ListInstructors(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInstructorResponses(instructors, true))
}

// ListAvailableInstructors lists the instructors a course may be assigned to.
func (h *InstructorHandler) ListAvailableInstructors(c echo.Context) error {
	instructors, err := h.instructorUC.ListAvailableInstructors(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInstructorResponses(instructors, false))
}

// GetInstructor returns one instructor for administrators.
func (h *InstructorHandler) GetInstructor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	instructor, err := h.instructorUC.GetInstructor(c.Request().Context(), middleware.GetActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInstructorResponse(instructor, true))
}

// UpdateInstructor handles PUT and PATCH on an instructor record.
func (h *InstructorHandler) UpdateInstructor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateInstructorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid instructor input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	instructor, err := h.instructorUC.UpdateInstructor(c.Request().Context(), middleware.GetActor(c), id, &usecase.UpdateInstructorInput{
		Specialty:         req.Specialty,
		ExtendedBio:       req.ExtendedBio,
		ExperienceYears:   req.ExperienceYears,
		ProfessionalTitle: req.ProfessionalTitle,
		Certifications:    req.Certifications,
		GitHubURL:         req.GitHubURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInstructorResponse(instructor, true))
}

// DeactivateInstructor soft-deletes an instructor and its user.
func (h *InstructorHandler) DeactivateInstructor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.instructorUC.DeactivateInstructor(c.Request().Context(), middleware.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListPublicInstructors is the public instructor directory.
func (h *InstructorHandler) ListPublicInstructors(c echo.Context) error {
	instructors, err := h.instructorUC.ListPublicInstructors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInstructorResponses(instructors, false))
}

// GetPublicInstructor returns one instructor of the public directory.
func (h *InstructorHandler) GetPublicInstructor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	instructor, err := h.instructorUC.GetPublicInstructor(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInstructorResponse(instructor, false))
}
