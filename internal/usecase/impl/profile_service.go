package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "academia/internal/delivery/context"
	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/domain/service"
	"academia/internal/errors"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	instructorRepo repository.InstructorRepository
	effects        *postCommit
	logger         *slog.Logger
	now            func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	InstructorRepo repository.InstructorRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		instructorRepo: params.InstructorRepo,
		effects:        newPostCommit(params.Publisher, nil, nil),
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the authenticated user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to get user profile")
	}

	return user, nil
}

// CompleteProfile is step 2 of the registration. A full update requires every mandatory
// field and is rejected once the profile is complete; a partial update is accepted in any state.
func (srv *profileService) CompleteProfile(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.CompleteProfileInput,
	partial bool,
) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.NewRequestShapeError("profile", "is required")
	}
	if !partial {
		if errs := requireProfileFields(input); !errs.Empty() {
			return nil, errs.Err()
		}
	}
	srv.log(ctx).Info("Completing user profile", slog.Any("userID", userID), slog.Bool("partial", partial))

	var (
		user        *entity.User
		wasComplete bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateNotFound(err)
		}
		wasComplete = user.ProfileComplete
		if !partial && wasComplete {
			return domainerrors.ErrProfileAlreadyComplete
		}

		errs := applyPersonalFields(user, input.FirstName, input.LastName, input.BirthDate, input.Country, &input.ProfileFields)
		if input.Handle != nil {
			handle := strings.TrimSpace(*input.Handle)
			if handle != "" && !entity.ValidHandle(handle) {
				errs.Add("handle", "may only contain letters, digits, dots and underscores")
			}
			user.Handle = strings.ToLower(handle)
		}
		errs.Merge("", validateBirthDate(user.BirthDate, srv.now(), entity.MinUserAge))
		if err := errs.Err(); err != nil {
			return err
		}

		if input.Handle != nil && user.Handle != "" {
			taken, err := userRepo.ExistsByHandle(ctx, user.Handle, user.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check handle")
			}
			if taken {
				return domainerrors.ErrHandleTaken.WithField("handle", "is already taken")
			}
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to update user profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to complete profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to complete user profile")
	}

	if !wasComplete && user.ProfileComplete {
		srv.effects.publish(ctx, srv.log(ctx), service.EventProfileCompleted, user.ID.String(), map[string]any{
			"handle": user.Handle,
		})
	}

	return user, nil
}

// UpdateProfile edits the personal fields. The handle is left alone.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.NewRequestShapeError("profile", "is required")
	}
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateNotFound(err)
		}

		errs := applyPersonalFields(user, input.FirstName, input.LastName, input.BirthDate, input.Country, &input.ProfileFields)
		if input.BirthDate != nil {
			errs.Merge("", validateBirthDate(user.BirthDate, srv.now(), 0))
		}
		if err := errs.Err(); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to update user profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

// ProfileStatus reports the missing mandatory fields, the next registration step and,
// for instructors, whether the instructor profile is complete.
func (srv *profileService) ProfileStatus(ctx context.Context, userID uuid.UUID) (*usecase.ProfileStatusOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to load user")
	}

	status := &usecase.ProfileStatusOutput{
		ProfileComplete: user.ProfileComplete,
		MissingFields:   user.MissingProfileFields(),
		NextStep:        usecase.NextStepFor(user),
		IsInstructor:    user.IsInstructor(),
	}

	// Suggested whenever both names are known, also for users who already picked a handle.
	if strings.TrimSpace(user.FirstName) != "" && strings.TrimSpace(user.LastName) != "" {
		status.SuggestedHandle, err = srv.suggestHandle(ctx, user)
		if err != nil {
			return nil, err
		}
	}

	if status.IsInstructor {
		complete := false
		instructor, err := srv.instructorRepo.FindByUserID(ctx, user.ID)
		switch {
		case err == nil:
			if instructor.User == nil {
				instructor.User = user
			}
			complete = instructor.ProfileComplete()
		case !errors.Is(err, repository.ErrInstructorNotFound):
			return nil, errors.Wrap(err, "failed to load instructor")
		}
		status.InstructorProfileComplete = &complete
	}

	return status, nil
}

func (srv *profileService) suggestHandle(ctx context.Context, user *entity.User) (string, error) {
	base := entity.HandleBase(user.FirstName, user.LastName, user.Email)
	if base == "" {
		return "", nil
	}

	handle, err := firstFreeCandidate(base, func(candidate string) (bool, error) {
		return srv.userRepo.ExistsByHandle(ctx, candidate, user.ID)
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to suggest handle")
	}

	return handle, nil
}

// CheckHandleAvailability answers whether handle is free for the user, case-insensitively.
func (srv *profileService) CheckHandleAvailability(ctx context.Context, userID uuid.UUID, handle string) (*usecase.HandleAvailabilityOutput, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, domainerrors.NewRequestShapeError("handle", "is required")
	}

	output := &usecase.HandleAvailabilityOutput{Handle: strings.ToLower(handle)}
	if !entity.ValidHandle(handle) {
		output.Message = "Handle may only contain letters, digits, dots and underscores"

		return output, nil
	}

	taken, err := srv.userRepo.ExistsByHandle(ctx, output.Handle, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check handle")
	}

	output.Available = !taken
	if taken {
		output.Message = "Handle is already taken"
	} else {
		output.Message = "Handle is available"
	}

	return output, nil
}

func requireProfileFields(input *usecase.CompleteProfileInput) domainerrors.FieldErrors {
	errs := domainerrors.FieldErrors{}
	required := []struct {
		field string
		value *string
	}{
		{"first_name", input.FirstName},
		{"last_name", input.LastName},
		{"handle", input.Handle},
		{"country", input.Country},
	}
	for _, r := range required {
		if r.value == nil || strings.TrimSpace(*r.value) == "" {
			errs.Add(r.field, "is required")
		}
	}
	if input.BirthDate == nil || input.BirthDate.IsZero() {
		errs.Add("birth_date", "is required")
	}

	return errs
}

// applyPersonalFields copies the provided values onto user and reports format errors.
func applyPersonalFields(
	user *entity.User,
	firstName, lastName *string,
	birthDate *time.Time,
	country *string,
	fields *usecase.ProfileFields,
) domainerrors.FieldErrors {
	setTrimmed(&user.FirstName, firstName)
	setTrimmed(&user.LastName, lastName)
	setTrimmed(&user.Country, country)
	if birthDate != nil {
		birth := *birthDate
		user.BirthDate = &birth
	}

	setTrimmed(&user.AvatarURL, fields.AvatarURL)
	setTrimmed(&user.CoverURL, fields.CoverURL)
	setTrimmed(&user.Biography, fields.Biography)
	setTrimmed(&user.Phone, fields.Phone)
	setTrimmed(&user.FacebookURL, fields.FacebookURL)
	setTrimmed(&user.LinkedInURL, fields.LinkedInURL)
	setTrimmed(&user.InstagramURL, fields.InstagramURL)

	errs := domainerrors.FieldErrors{}
	if user.Phone != "" && !entity.ValidPhone(user.Phone) {
		errs.Add("phone", "must contain 9 to 15 digits with an optional leading +")
	}
	if len(user.FirstName) > 100 {
		errs.Add("first_name", "must be at most 100 characters")
	}
	if len(user.LastName) > 100 {
		errs.Add("last_name", "must be at most 100 characters")
	}

	return errs
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// validateBirthDate rejects future birth dates and, when minAge > 0, users younger than minAge.
func validateBirthDate(birthDate *time.Time, today time.Time, minAge int) domainerrors.FieldErrors {
	errs := domainerrors.FieldErrors{}
	if birthDate == nil || birthDate.IsZero() {
		return errs
	}

	switch age := entity.AgeOn(*birthDate, today); {
	case birthDate.After(today):
		errs.Add("birth_date", "cannot be in the future")
	case minAge > 0 && age < minAge:
		errs.Add("birth_date", "implies an age below the minimum of "+strconv.Itoa(minAge))
	case age > entity.MaxUserAge:
		errs.Add("birth_date", "implies an age above the maximum of "+strconv.Itoa(entity.MaxUserAge))
	}

	return errs
}
