package postgres

import (
	"context"
	"strings"
	"time"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/errors"
	"academia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db, now: time.Now}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address. Reads go to the primary
// so a login right after registration sees the new row.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Where("email = ?", entity.NormalizeEmail(email)).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmail reports whether any user owns the email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "email = ?", entity.NormalizeEmail(email))
}

// ExistsByUsername reports whether the system username is taken.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return repo.exists(ctx, "username = ?", username)
}

// ExistsByHandle reports whether another user holds the handle, compared case-insensitively.
func (repo *userRepository) ExistsByHandle(ctx context.Context, handle string, excludeID uuid.UUID) (bool, error) {
	handle = strings.ToLower(strings.TrimSpace(handle))
	if excludeID == uuid.Nil {
		return repo.exists(ctx, "lower(handle) = ?", handle)
	}

	return repo.exists(ctx, "lower(handle) = ? AND id <> ?", handle, excludeID)
}

// Uniqueness checks always hit the primary.
func (repo *userRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Model(&model.UserModel{}).
		Where(query, args...).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}

// Create persists a new user. Derived fields are refreshed first.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	user.RefreshDerived(repo.now())
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if mapped := mapUserConstraintError(err); mapped != nil {
			return mapped
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update saves every column of an existing user. Derived fields are refreshed first.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.RefreshDerived(repo.now())

	userM := fromUserDomain(user)
	result := repo.db.WithContext(ctx).Model(userM).Select("*").Omit("created_at").Updates(userM)
	if err := result.Error; err != nil {
		if mapped := mapUserConstraintError(err); mapped != nil {
			return mapped
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// AcquireSessionMutex locks the user's row with SELECT ... FOR UPDATE.
func (repo *userRepository) AcquireSessionMutex(ctx context.Context, id uuid.UUID) error {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to lock user row")
	}

	return nil
}

func mapUserConstraintError(err error) error {
	if !isUniqueConstraintViolation(err) {
		return nil
	}

	switch violatedConstraint(err) {
	case constraintUsersUsername:
		return domainerrors.ErrUsernameTaken.WithField("username", "is already taken")
	case constraintUsersHandle:
		return domainerrors.ErrHandleTaken.WithField("handle", "is already taken")
	default:
		return domainerrors.ErrEmailAlreadyExists.WithField("email", "is already registered")
	}
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		Username:        data.Username,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		BirthDate:       data.BirthDate,
		Age:             data.Age,
		Country:         data.Country,
		AvatarURL:       data.AvatarURL,
		CoverURL:        data.CoverURL,
		Biography:       data.Biography,
		Phone:           data.Phone,
		FacebookURL:     data.FacebookURL,
		LinkedInURL:     data.LinkedInURL,
		InstagramURL:    data.InstagramURL,
		Role:            entity.Role(data.Role),
		ProfileComplete: data.ProfileComplete,
		Active:          data.Active,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.Handle != nil {
		user.Handle = *data.Handle
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
// An empty handle is stored as NULL so the unique index ignores it.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	var handle *string
	if data.Handle != "" {
		h := data.Handle
		handle = &h
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		Username:        data.Username,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Handle:          handle,
		BirthDate:       data.BirthDate,
		Age:             data.Age,
		Country:         data.Country,
		AvatarURL:       data.AvatarURL,
		CoverURL:        data.CoverURL,
		Biography:       data.Biography,
		Phone:           data.Phone,
		FacebookURL:     data.FacebookURL,
		LinkedInURL:     data.LinkedInURL,
		InstagramURL:    data.InstagramURL,
		Role:            data.Role.String(),
		ProfileComplete: data.ProfileComplete,
		Active:          data.Active,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
