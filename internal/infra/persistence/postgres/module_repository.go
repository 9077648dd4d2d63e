package postgres

import (
	"context"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/errors"
	"academia/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// moduleRepository implements the domain.ModuleRepository interface.
type moduleRepository struct {
	db *gorm.DB
}

// NewModuleRepository is the constructor for moduleRepository.
func NewModuleRepository(db *gorm.DB) repository.ModuleRepository {
	return &moduleRepository{db: db}
}

// List returns the matching modules ordered by course and order.
func (repo *moduleRepository) List(ctx context.Context, filter repository.ModuleFilter) ([]*entity.Module, error) {
	query := repo.db.WithContext(ctx).Preload("Lessons", activeInOrder)

	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	if filter.ActiveOnly {
		query = query.Where("active")
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var moduleMs []model.ModuleModel
	if err := query.Order("course_id ASC, sort_order ASC").Find(&moduleMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list modules")
	}

	modules := make([]*entity.Module, 0, len(moduleMs))
	for i := range moduleMs {
		modules = append(modules, toModuleDomain(&moduleMs[i]))
	}

	return modules, nil
}

// FindByID retrieves a module with its active lessons.
func (repo *moduleRepository) FindByID(ctx context.Context, id uint64) (*entity.Module, error) {
	var moduleM model.ModuleModel
	err := repo.db.WithContext(ctx).
		Preload("Lessons", activeInOrder).
		Where("id = ?", id).
		First(&moduleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find module")
	}

	return toModuleDomain(&moduleM), nil
}

// Create persists a new module. Its lessons are written separately.
func (repo *moduleRepository) Create(ctx context.Context, module *entity.Module) error {
	module.Normalize()

	moduleM := fromModuleDomain(module)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(moduleM).Error; err != nil {
		if mapped := mapModuleConstraintError(err); mapped != nil {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create module")
	}

	module.ID = moduleM.ID
	module.CreatedAt = moduleM.CreatedAt
	module.UpdatedAt = moduleM.UpdatedAt

	return nil
}

// Update saves every column of an existing module.
func (repo *moduleRepository) Update(ctx context.Context, module *entity.Module) error {
	module.Normalize()

	moduleM := fromModuleDomain(module)
	result := repo.db.WithContext(ctx).Model(moduleM).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(moduleM)
	if result.Error != nil {
		if mapped := mapModuleConstraintError(result.Error); mapped != nil {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update module")
	}
	if result.RowsAffected == 0 {
		return repository.ErrModuleNotFound
	}

	module.UpdatedAt = moduleM.UpdatedAt

	return nil
}

// DeleteByCourseID hard-deletes every module of a course. Lessons cascade in the database.
func (repo *moduleRepository) DeleteByCourseID(ctx context.Context, courseID uint64) (int64, error) {
	result := repo.db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.ModuleModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete course modules")
	}

	return result.RowsAffected, nil
}

func mapModuleConstraintError(err error) error {
	switch {
	case isUniqueConstraintViolation(err):
		if c := violatedConstraint(err); c != "" && c != constraintModulesCourseOrder {
			return nil
		}

		return domainerrors.ErrOrderConflict.WithField("order", "is already used by another module of this course")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrCourseNotFound.WithField("course_id", "does not exist")
	default:
		return nil
	}
}

func toModuleDomain(data *model.ModuleModel) *entity.Module {
	if data == nil {
		return nil
	}

	module := &entity.Module{
		ID:              data.ID,
		CourseID:        data.CourseID,
		Title:           data.Title,
		Description:     data.Description,
		Order:           data.Order,
		DurationMinutes: data.DurationMinutes,
		Expandable:      data.Expandable,
		Active:          data.Active,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if len(data.Lessons) > 0 {
		module.Lessons = make([]*entity.Lesson, 0, len(data.Lessons))
		for i := range data.Lessons {
			module.Lessons = append(module.Lessons, toLessonDomain(&data.Lessons[i]))
		}
	}

	return module
}

func fromModuleDomain(data *entity.Module) *model.ModuleModel {
	if data == nil {
		return nil
	}

	return &model.ModuleModel{
		ID:              data.ID,
		CourseID:        data.CourseID,
		Title:           data.Title,
		Description:     data.Description,
		Order:           data.Order,
		DurationMinutes: data.DurationMinutes,
		Expandable:      data.Expandable,
		Active:          data.Active,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
