package impl

import (
	"context"
	"log/slog"
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

// instructorService implements the InstructorUsecase interface.
type instructorService struct {
	txManager      repository.TransactionManager
	instructorRepo repository.InstructorRepository
	courseRepo     repository.CourseRepository
	hasher         service.PasswordHasher
	effects        *postCommit
	logger         *slog.Logger
	now            func() time.Time
}

// InstructorServiceParams holds dependencies for InstructorService, injected by Fx.
type InstructorServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	InstructorRepo repository.InstructorRepository
	CourseRepo     repository.CourseRepository
	Hasher         service.PasswordHasher
	Cache          service.CourseCache
	Publisher      service.EventPublisher
	Metrics        service.MetricsRecorder
	Logger         *slog.Logger
}

// NewInstructorService is the constructor for instructorService.
func NewInstructorService(params InstructorServiceParams) usecase.InstructorUsecase {
	return &instructorService{
		txManager:      params.TxManager,
		instructorRepo: params.InstructorRepo,
		courseRepo:     params.CourseRepo,
		hasher:         params.Hasher,
		effects:        newPostCommit(params.Publisher, params.Cache, params.Metrics),
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *instructorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func requireAdmin(actor *usecase.Actor) error {
	if !actor.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "administrator role required")
	}

	return nil
}

// CreateInstructor creates the user account, its credentials and the instructor record in one transaction.
func (srv *instructorService) CreateInstructor(
	ctx context.Context,
	actor *usecase.Actor,
	input *usecase.CreateInstructorInput,
) (*entity.Instructor, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.NewRequestShapeError("instructor", "is required")
	}

	user, instructor := srv.buildInstructor(input)
	if err := srv.validateNewInstructor(user, instructor, input); err != nil {
		return nil, err
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash instructor password")
	}

	srv.log(ctx).Info("Creating instructor", slog.String("email", user.Email), slog.String("username", user.Username))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := checkAccountUniqueness(ctx, userRepo, user); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create instructor user")
		}

		if err := repoFactory.AuthRepo().CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: user.Email,
			PasswordHash:   hashedPassword,
		}); err != nil {
			return errors.Wrap(err, "failed to create instructor authentication")
		}

		instructor.UserID = user.ID
		if err := repoFactory.InstructorRepo().Create(ctx, instructor); err != nil {
			return errors.Wrap(err, "failed to create instructor")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create instructor", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute instructor creation transaction")
	}

	srv.effects.userRegistered(registrationInstructor)
	srv.effects.publish(ctx, srv.log(ctx), service.EventInstructorCreated, user.ID.String(), map[string]any{
		"instructor_id": instructor.ID,
		"username":      user.Username,
	})

	return instructor, nil
}

// buildInstructor maps the input onto a new instructor user. The handle is seeded from the username.
func (srv *instructorService) buildInstructor(input *usecase.CreateInstructorInput) (*entity.User, *entity.Instructor) {
	birthDate := input.BirthDate
	username := strings.ToLower(strings.TrimSpace(input.Username))

	user := &entity.User{
		Email:       entity.NormalizeEmail(input.Email),
		Username:    username,
		Handle:      username,
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		BirthDate:   &birthDate,
		Country:     strings.TrimSpace(input.Country),
		AvatarURL:   strings.TrimSpace(input.AvatarURL),
		Biography:   strings.TrimSpace(input.Biography),
		Phone:       strings.TrimSpace(input.Phone),
		LinkedInURL: strings.TrimSpace(input.LinkedInURL),
		Role:        entity.RoleInstructor,
		Active:      true,
	}

	instructor := &entity.Instructor{
		User:              user,
		Specialty:         strings.TrimSpace(input.Specialty),
		ExtendedBio:       strings.TrimSpace(input.ExtendedBio),
		ExperienceYears:   input.ExperienceYears,
		ProfessionalTitle: strings.TrimSpace(input.ProfessionalTitle),
		Certifications:    strings.TrimSpace(input.Certifications),
		GitHubURL:         strings.TrimSpace(input.GitHubURL),
	}

	return user, instructor
}

func (srv *instructorService) validateNewInstructor(user *entity.User, instructor *entity.Instructor, input *usecase.CreateInstructorInput) error {
	errs := domainerrors.FieldErrors{}
	if user.Email == "" || !strings.Contains(user.Email, "@") {
		errs.Add("email", "must be a valid email address")
	}
	switch {
	case user.Username == "":
		errs.Add("username", "is required")
	case !entity.ValidHandle(user.Username):
		errs.Add("username", "may only contain letters, digits, dots and underscores")
	}
	if user.FirstName == "" {
		errs.Add("first_name", "is required")
	}
	if user.LastName == "" {
		errs.Add("last_name", "is required")
	}
	if user.Country == "" {
		errs.Add("country", "is required")
	}
	if input.BirthDate.IsZero() {
		errs.Add("birth_date", "is required")
	} else {
		errs.Merge("", validateBirthDate(user.BirthDate, srv.now(), entity.MinInstructorAge))
	}
	if user.Phone != "" && !entity.ValidPhone(user.Phone) {
		errs.Add("phone", "must contain 9 to 15 digits with an optional leading +")
	}
	if input.Password == "" {
		errs.Add("password", "is required")
	}
	if input.Password != input.ConfirmPassword {
		errs.Add("confirm_password", "does not match password")
	}
	errs.Merge("", instructor.Validate())

	return errs.Err()
}

// checkAccountUniqueness reports the first taken identifier of a new account as a conflict.
func checkAccountUniqueness(ctx context.Context, userRepo repository.UserRepository, user *entity.User) error {
	exists, err := userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	if exists {
		return domainerrors.ErrEmailAlreadyExists.WithField("email", "is already registered")
	}

	exists, err = userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if exists {
		return domainerrors.ErrUsernameTaken.WithField("username", "is already taken")
	}

	exists, err = userRepo.ExistsByHandle(ctx, user.Handle, uuid.Nil)
	if err != nil {
		return errors.Wrap(err, "failed to check handle")
	}
	if exists {
		return domainerrors.ErrHandleTaken.WithField("username", "is already used as a handle")
	}

	return nil
}

// UpdateInstructor applies a partial update to the instructor-specific fields.
func (srv *instructorService) UpdateInstructor(
	ctx context.Context,
	actor *usecase.Actor,
	id uint64,
	input *usecase.UpdateInstructorInput,
) (*entity.Instructor, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.NewRequestShapeError("instructor", "is required")
	}

	var instructor *entity.Instructor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		instructorRepo := repoFactory.InstructorRepo()

		var err error
		instructor, err = instructorRepo.FindByID(ctx, id)
		if err != nil {
			return translateNotFound(err)
		}

		setTrimmed(&instructor.Specialty, input.Specialty)
		setTrimmed(&instructor.ExtendedBio, input.ExtendedBio)
		setTrimmed(&instructor.ProfessionalTitle, input.ProfessionalTitle)
		setTrimmed(&instructor.Certifications, input.Certifications)
		setTrimmed(&instructor.GitHubURL, input.GitHubURL)
		if input.ExperienceYears != nil {
			instructor.ExperienceYears = *input.ExperienceYears
		}

		if err := instructor.Validate().Err(); err != nil {
			return err
		}

		if err := instructorRepo.Update(ctx, instructor); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to update instructor")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update instructor", slog.Uint64("instructor_id", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute instructor update transaction")
	}
	srv.invalidateInstructorCourses(ctx, id)

	return instructor, nil
}

// DeactivateInstructor deactivates the linked user and ends its sessions. Nothing is deleted.
func (srv *instructorService) DeactivateInstructor(ctx context.Context, actor *usecase.Actor, id uint64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	var instructor *entity.Instructor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		instructor, err = repoFactory.InstructorRepo().FindByID(ctx, id)
		if err != nil {
			return translateNotFound(err)
		}
		if instructor.User == nil {
			return errors.Wrap(domainerrors.ErrUserNotFound, "instructor has no user")
		}

		instructor.User.Active = false
		if err := repoFactory.UserRepo().Update(ctx, instructor.User); err != nil {
			return errors.Wrap(translateNotFound(err), "failed to deactivate instructor user")
		}

		if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, instructor.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke instructor sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to deactivate instructor", slog.Uint64("instructor_id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute instructor deactivation transaction")
	}

	srv.effects.publish(ctx, srv.log(ctx), service.EventInstructorDeactivated, instructor.UserID.String(), map[string]any{
		"instructor_id": instructor.ID,
	})
	srv.invalidateInstructorCourses(ctx, id)
	srv.log(ctx).Info("Instructor deactivated", slog.Uint64("instructor_id", id))

	return nil
}

// invalidateInstructorCourses drops the cached trees that embed the instructor.
func (srv *instructorService) invalidateInstructorCourses(ctx context.Context, id uint64) {
	srv.effects.invalidateCoursesWhere(ctx, srv.log(ctx), srv.courseRepo, repository.CourseFilter{InstructorID: &id})
}

// GetInstructor returns any instructor, active or not.
func (srv *instructorService) GetInstructor(ctx context.Context, actor *usecase.Actor, id uint64) (*entity.Instructor, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	instructor, err := srv.instructorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to get instructor")
	}

	return instructor, nil
}

func (srv *instructorService) ListInstructors(ctx context.Context, actor *usecase.Actor) ([]*entity.Instructor, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	instructors, err := srv.instructorRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list instructors")
	}

	return instructors, nil
}

// ListAvailableInstructors returns the instructors a course may be assigned to.
func (srv *instructorService) ListAvailableInstructors(ctx context.Context, actor *usecase.Actor) ([]*entity.Instructor, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	return srv.listEligible(ctx)
}

func (srv *instructorService) ListPublicInstructors(ctx context.Context) ([]*entity.Instructor, error) {
	return srv.listEligible(ctx)
}

func (srv *instructorService) listEligible(ctx context.Context) ([]*entity.Instructor, error) {
	instructors, err := srv.instructorRepo.ListAvailable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available instructors")
	}

	eligible := make([]*entity.Instructor, 0, len(instructors))
	for _, instructor := range instructors {
		if canTeach(instructor) {
			eligible = append(eligible, instructor)
		}
	}

	return eligible, nil
}

// GetPublicInstructor returns an instructor only when it is publicly listed.
func (srv *instructorService) GetPublicInstructor(ctx context.Context, id uint64) (*entity.Instructor, error) {
	instructor, err := srv.instructorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(translateNotFound(err), "failed to get instructor")
	}
	if !canTeach(instructor) {
		return nil, domainerrors.ErrInstructorNotFound
	}

	return instructor, nil
}
