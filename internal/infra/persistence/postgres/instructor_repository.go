package postgres

import (
	"context"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/errors"
	"academia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const instructorsByName = "users.first_name ASC, users.last_name ASC, instructors.id ASC"

// instructorRepository implements the domain.InstructorRepository interface.
type instructorRepository struct {
	db *gorm.DB
}

// NewInstructorRepository is the constructor for instructorRepository.
func NewInstructorRepository(db *gorm.DB) repository.InstructorRepository {
	return &instructorRepository{db: db}
}

// FindByID retrieves an instructor with its user loaded.
func (repo *instructorRepository) FindByID(ctx context.Context, id uint64) (*entity.Instructor, error) {
	return repo.findOne(ctx, "instructors.id = ?", id)
}

// FindByUserID retrieves the instructor extending the given user.
func (repo *instructorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Instructor, error) {
	return repo.findOne(ctx, "instructors.user_id = ?", userID)
}

func (repo *instructorRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Instructor, error) {
	var instructorM model.InstructorModel
	err := repo.db.WithContext(ctx).Preload("User").Where(query, args...).First(&instructorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInstructorNotFound
		}

		return nil, errors.Wrap(err, "failed to find instructor")
	}

	return toInstructorDomain(&instructorM), nil
}

// ListAvailable returns instructors whose user is active and profile-complete.
func (repo *instructorRepository) ListAvailable(ctx context.Context) ([]*entity.Instructor, error) {
	return repo.list(ctx, "users.active AND users.profile_complete")
}

// ListAll returns every instructor with its user.
func (repo *instructorRepository) ListAll(ctx context.Context) ([]*entity.Instructor, error) {
	return repo.list(ctx, "")
}

func (repo *instructorRepository) list(ctx context.Context, condition string) ([]*entity.Instructor, error) {
	query := repo.db.WithContext(ctx).
		Joins("JOIN users ON users.id = instructors.user_id").
		Preload("User")
	if condition != "" {
		query = query.Where(condition)
	}

	var instructorMs []model.InstructorModel
	if err := query.Order(instructorsByName).Find(&instructorMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list instructors")
	}

	instructors := make([]*entity.Instructor, 0, len(instructorMs))
	for i := range instructorMs {
		instructors = append(instructors, toInstructorDomain(&instructorMs[i]))
	}

	return instructors, nil
}

// Create persists a new instructor and coerces the linked user's role.
func (repo *instructorRepository) Create(ctx context.Context, instructor *entity.Instructor) error {
	instructorM := fromInstructorDomain(instructor)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(instructorM).Error; err != nil {
		return mapInstructorError(err, "failed to create instructor")
	}

	instructor.ID = instructorM.ID
	instructor.CreatedAt = instructorM.CreatedAt
	instructor.UpdatedAt = instructorM.UpdatedAt

	return repo.enforceUserRole(ctx, instructor)
}

// Update saves every column of an existing instructor and coerces the linked user's role.
func (repo *instructorRepository) Update(ctx context.Context, instructor *entity.Instructor) error {
	instructorM := fromInstructorDomain(instructor)
	result := repo.db.WithContext(ctx).Model(instructorM).
		Select("*").
		Omit("created_at", "user_id", clause.Associations).
		Updates(instructorM)
	if result.Error != nil {
		return mapInstructorError(result.Error, "failed to update instructor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInstructorNotFound
	}

	instructor.UpdatedAt = instructorM.UpdatedAt

	return repo.enforceUserRole(ctx, instructor)
}

func (repo *instructorRepository) enforceUserRole(ctx context.Context, instructor *entity.Instructor) error {
	instructor.EnforceUserRole()

	err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ? AND role <> ?", instructor.UserID, entity.RoleInstructor.String()).
		Update("role", entity.RoleInstructor.String()).Error
	if err != nil {
		return errors.Wrap(err, "failed to coerce instructor user role")
	}

	return nil
}

func mapInstructorError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrInstructorAlreadyExists.WithField("user_id", "already has an instructor profile")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrUserNotFound.WithField("user_id", "does not exist")
	case isCheckConstraintViolation(err):
		return domainerrors.NewValidationError("experience_years", "must be between 0 and 60")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toInstructorDomain(data *model.InstructorModel) *entity.Instructor {
	if data == nil {
		return nil
	}

	return &entity.Instructor{
		ID:                data.ID,
		UserID:            data.UserID,
		User:              toUserDomain(data.User),
		Specialty:         data.Specialty,
		ExtendedBio:       data.ExtendedBio,
		ExperienceYears:   data.ExperienceYears,
		ProfessionalTitle: data.ProfessionalTitle,
		Certifications:    data.Certifications,
		GitHubURL:         data.GitHubURL,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromInstructorDomain(data *entity.Instructor) *model.InstructorModel {
	if data == nil {
		return nil
	}

	return &model.InstructorModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Specialty:         data.Specialty,
		ExtendedBio:       data.ExtendedBio,
		ExperienceYears:   data.ExperienceYears,
		ProfessionalTitle: data.ProfessionalTitle,
		Certifications:    data.Certifications,
		GitHubURL:         data.GitHubURL,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
