package handler

import (
	"log/slog"
	"net/http"

	"academia/internal/delivery/api/middleware"
	"academia/internal/delivery/api/response"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the authenticated user's profile and the second registration step.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ProfileFieldsRequest holds the optional profile fields shared by every profile write.
type ProfileFieldsRequest struct {
	AvatarURL    *string `json:"avatar_url" validate:"omitempty,max=500"`
	CoverURL     *string `json:"cover_url" validate:"omitempty,max=500"`
	Biography    *string `json:"biography"`
	Phone        *string `json:"phone" validate:"omitempty,max=17"`
	FacebookURL  *string `json:"facebook_url" validate:"omitempty,max=500"`
	LinkedInURL  *string `json:"linkedin_url" validate:"omitempty,max=500"`
	InstagramURL *string `json:"instagram_url" validate:"omitempty,max=500"`
}

func (r ProfileFieldsRequest) toInput() usecase.ProfileFields {
	return usecase.ProfileFields{
		AvatarURL:    r.AvatarURL,
		CoverURL:     r.CoverURL,
		Biography:    r.Biography,
		Phone:        r.Phone,
		FacebookURL:  r.FacebookURL,
		LinkedInURL:  r.LinkedInURL,
		InstagramURL: r.InstagramURL,
	}
}

// CompleteProfileRequest is the body of step 2 of the registration.
type CompleteProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	BirthDate *string `json:"birth_date"`
	Handle    *string `json:"handle"`
	Country   *string `json:"country" validate:"omitempty,max=100"`
	ProfileFieldsRequest
}

// UpdateProfileRequest is the body of a profile update. The handle is not editable here.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	BirthDate *string `json:"birth_date"`
	Country   *string `json:"country" validate:"omitempty,max=100"`
	ProfileFieldsRequest
}

// ProfileStatusResponse reports where the user stands in the registration flow.
type ProfileStatusResponse struct {
	ProfileComplete           bool     `json:"profile_complete"`
	MissingFields             []string `json:"missing_fields"`
	NextStep                  *string  `json:"next_step"`
	SuggestedHandle           *string  `json:"suggested_handle"`
	IsInstructor              bool     `json:"is_instructor"`
	InstructorProfileComplete *bool    `json:"instructor_profile_complete,omitempty"`
}

func newProfileStatusResponse(status *usecase.ProfileStatusOutput) *ProfileStatusResponse {
	resp := &ProfileStatusResponse{
		ProfileComplete:           status.ProfileComplete,
		MissingFields:             status.MissingFields,
		IsInstructor:              status.IsInstructor,
		InstructorProfileComplete: status.InstructorProfileComplete,
	}
	if resp.MissingFields == nil {
		resp.MissingFields = []string{}
	}
	if status.NextStep != "" {
		resp.NextStep = &status.NextStep
	}
	if status.SuggestedHandle != "" {
		resp.SuggestedHandle = &status.SuggestedHandle
	}

	return resp
}

// GetProfile returns the authenticated user.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateProfile partially updates the authenticated user's personal data.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	errs := domainerrors.FieldErrors{}
	input := &usecase.UpdateProfileInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		BirthDate:     parseDate(errs, "birth_date", req.BirthDate),
		Country:       req.Country,
		ProfileFields: req.toInput(),
	}
	if err := errs.Err(); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// GetCompleteProfile returns the profile form together with the pending fields.
func (h *ProfileHandler) GetCompleteProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ctx := c.Request().Context()
	user, err := h.profileUC.GetProfile(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	status, err := h.profileUC.ProfileStatus(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":           newUserResponse(user),
		"profile_status": newProfileStatusResponse(status),
	})
}

// CompleteProfile handles PUT (every mandatory field) and PATCH (partial) on the second step.
func (h *ProfileHandler) CompleteProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CompleteProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	errs := domainerrors.FieldErrors{}
	input := &usecase.CompleteProfileInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		BirthDate:     parseDate(errs, "birth_date", req.BirthDate),
		Handle:        req.Handle,
		Country:       req.Country,
		ProfileFields: req.toInput(),
	}
	if err := errs.Err(); err != nil {
		return response.HandleAppError(c, err)
	}

	partial := c.Request().Method == http.MethodPatch
	user, err := h.profileUC.CompleteProfile(c.Request().Context(), userID, input, partial)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":      newUserResponse(user),
		"next_step": nullableString(usecase.NextStepFor(user)),
	})
}

// ProfileStatus reports the registration progress of the authenticated user.
func (h *ProfileHandler) ProfileStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.profileUC.ProfileStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileStatusResponse(status))
}

// HandleAvailability checks a handle for the authenticated user.
func (h *ProfileHandler) HandleAvailability(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.profileUC.CheckHandleAvailability(c.Request().Context(), userID, c.QueryParam("handle"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"handle":    output.Handle,
		"available": output.Available,
		"message":   output.Message,
	})
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
