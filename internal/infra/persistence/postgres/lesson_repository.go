package postgres

import (
	"context"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/errors"
	"academia/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// lessonRepository implements the domain.LessonRepository interface.
type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository is the constructor for lessonRepository.
func NewLessonRepository(db *gorm.DB) repository.LessonRepository {
	return &lessonRepository{db: db}
}

// List returns the matching lessons ordered by module and order.
func (repo *lessonRepository) List(ctx context.Context, filter repository.LessonFilter) ([]*entity.Lesson, error) {
	query := repo.db.WithContext(ctx)

	if filter.ModuleID != nil {
		query = query.Where("module_id = ?", *filter.ModuleID)
	}
	if filter.ActiveOnly {
		query = query.Where("active")
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var lessonMs []model.LessonModel
	if err := query.Order("module_id ASC, sort_order ASC").Find(&lessonMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list lessons")
	}

	lessons := make([]*entity.Lesson, 0, len(lessonMs))
	for i := range lessonMs {
		lessons = append(lessons, toLessonDomain(&lessonMs[i]))
	}

	return lessons, nil
}

// FindByID retrieves a single lesson.
func (repo *lessonRepository) FindByID(ctx context.Context, id uint64) (*entity.Lesson, error) {
	var lessonM model.LessonModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&lessonM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLessonNotFound
		}

		return nil, errors.Wrap(err, "failed to find lesson")
	}

	return toLessonDomain(&lessonM), nil
}

// Create persists a new lesson after applying the content type coercion.
func (repo *lessonRepository) Create(ctx context.Context, lesson *entity.Lesson) error {
	lesson.Normalize()

	lessonM := fromLessonDomain(lesson)
	if err := repo.db.WithContext(ctx).Create(lessonM).Error; err != nil {
		if mapped := mapLessonConstraintError(err); mapped != nil {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lesson")
	}

	lesson.ID = lessonM.ID
	lesson.CreatedAt = lessonM.CreatedAt
	lesson.UpdatedAt = lessonM.UpdatedAt

	return nil
}

// Update saves every column of an existing lesson after applying the content type coercion.
func (repo *lessonRepository) Update(ctx context.Context, lesson *entity.Lesson) error {
	lesson.Normalize()

	lessonM := fromLessonDomain(lesson)
	result := repo.db.WithContext(ctx).Model(lessonM).Select("*").Omit("created_at").Updates(lessonM)
	if result.Error != nil {
		if mapped := mapLessonConstraintError(result.Error); mapped != nil {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update lesson")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLessonNotFound
	}

	lesson.UpdatedAt = lessonM.UpdatedAt

	return nil
}

func mapLessonConstraintError(err error) error {
	switch {
	case isUniqueConstraintViolation(err):
		if c := violatedConstraint(err); c != "" && c != constraintLessonsModuleOrder {
			return nil
		}

		return domainerrors.ErrOrderConflict.WithField("order", "is already used by another lesson of this module")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrModuleNotFound.WithField("module_id", "does not exist")
	default:
		return nil
	}
}

func toLessonDomain(data *model.LessonModel) *entity.Lesson {
	if data == nil {
		return nil
	}

	return &entity.Lesson{
		ID:              data.ID,
		ModuleID:        data.ModuleID,
		Title:           data.Title,
		Content:         data.Content,
		ContentType:     entity.ContentType(data.ContentType),
		VideoURL:        data.VideoURL,
		DurationMinutes: data.DurationMinutes,
		DurationSeconds: data.DurationSeconds,
		Order:           data.Order,
		IsFreePreview:   data.IsFreePreview,
		Active:          data.Active,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromLessonDomain(data *entity.Lesson) *model.LessonModel {
	if data == nil {
		return nil
	}

	return &model.LessonModel{
		ID:              data.ID,
		ModuleID:        data.ModuleID,
		Title:           data.Title,
		Content:         data.Content,
		ContentType:     string(data.ContentType),
		VideoURL:        data.VideoURL,
		DurationMinutes: data.DurationMinutes,
		DurationSeconds: data.DurationSeconds,
		Order:           data.Order,
		IsFreePreview:   data.IsFreePreview,
		Active:          data.Active,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
