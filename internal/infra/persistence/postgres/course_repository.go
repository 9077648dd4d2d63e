package postgres

import (
	"context"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/errors"
	"academia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var courseOrderColumns = map[repository.CourseOrderField]string{
	repository.CourseOrderTitle:     "courses.title",
	repository.CourseOrderPrice:     "courses.price",
	repository.CourseOrderCreatedAt: "courses.created_at",
	repository.CourseOrderRating:    "courses.rating",
}

// courseRepository implements the domain.CourseRepository interface.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

// List returns one page of matching courses and the total number of matches.
func (repo *courseRepository) List(ctx context.Context, filter repository.CourseFilter, page repository.Pagination) ([]*entity.Course, int64, error) {
	query := applyCourseFilter(repo.joinedCourses(ctx), filter)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count courses")
	}

	var courseMs []model.CourseModel
	err := query.Select("courses.*").
		Preload("Category").
		Preload("Instructor.User").
		Order(courseOrderClause(filter.Order)).
		Order("courses.id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&courseMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(courseMs))
	for i := range courseMs {
		courses = append(courses, toCourseDomain(&courseMs[i]))
	}

	return courses, total, nil
}

// ListUUIDs returns the public ids of the matching courses. The course cache is keyed by them.
func (repo *courseRepository) ListUUIDs(ctx context.Context, filter repository.CourseFilter) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := applyCourseFilter(repo.joinedCourses(ctx), filter).
		Order("courses.id").
		Pluck("courses.uuid", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list course ids")
	}

	return ids, nil
}

// joinedCourses joins the tables course filters and searches read from.
func (repo *courseRepository) joinedCourses(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.CourseModel{}).
		Joins("JOIN categories ON categories.id = courses.category_id").
		Joins("JOIN instructors ON instructors.id = courses.instructor_id").
		Joins("JOIN users ON users.id = instructors.user_id")
}

func applyCourseFilter(query *gorm.DB, filter repository.CourseFilter) *gorm.DB {
	if filter.ActiveOnly {
		query = query.Where("courses.active")
	}
	if filter.CategoryID != nil {
		query = query.Where("courses.category_id = ?", *filter.CategoryID)
	}
	if filter.CategoryName != "" {
		query = query.Where("categories.name ILIKE ?", likePattern(filter.CategoryName))
	}
	if filter.InstructorID != nil {
		query = query.Where("courses.instructor_id = ?", *filter.InstructorID)
	}
	if filter.InstructorName != "" {
		pattern := likePattern(filter.InstructorName)
		query = query.Where("users.first_name ILIKE ? OR users.last_name ILIKE ?", pattern, pattern)
	}
	if filter.MinPrice != nil {
		query = query.Where("courses.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("courses.price <= ?", *filter.MaxPrice)
	}
	if filter.MinDuration != nil {
		query = query.Where("courses.duration_hours >= ?", *filter.MinDuration)
	}
	if filter.MaxDuration != nil {
		query = query.Where("courses.duration_hours <= ?", *filter.MaxDuration)
	}
	if filter.MinRating != nil {
		query = query.Where("courses.rating >= ?", *filter.MinRating)
	}
	if filter.Level != "" {
		query = query.Where("courses.level = ?", string(filter.Level))
	}
	if filter.Modality != "" {
		query = query.Where("courses.modality = ?", string(filter.Modality))
	}
	if filter.IsFree != nil {
		query = query.Where("courses.is_free = ?", *filter.IsFree)
	}
	if filter.Featured != nil {
		query = query.Where("courses.featured = ?", *filter.Featured)
	}
	if filter.FreeAndFeatured {
		query = query.Where("courses.is_free AND courses.featured")
	}
	if filter.Title != "" {
		query = query.Where("courses.title ILIKE ?", likePattern(filter.Title))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where(
			"courses.title ILIKE @p OR courses.description ILIKE @p OR courses.short_description ILIKE @p "+
				"OR users.first_name ILIKE @p OR users.last_name ILIKE @p OR instructors.specialty ILIKE @p",
			map[string]any{"p": pattern},
		)
	}

	return query
}

func courseOrderClause(order repository.CourseOrder) string {
	column, ok := courseOrderColumns[order.Field]
	if !ok {
		return "courses.featured DESC, courses.created_at DESC"
	}
	if order.Field == repository.CourseOrderRating {
		return orderExpr(column, order.Descending) + " NULLS LAST"
	}

	return orderExpr(column, order.Descending)
}

// FindByID retrieves a course by its internal id.
func (repo *courseRepository) FindByID(ctx context.Context, id uint64) (*entity.Course, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUUID retrieves a course with its category and instructor.
func (repo *courseRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	return repo.findOne(ctx, "uuid = ?", id)
}

func (repo *courseRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Course, error) {
	var courseM model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Instructor.User").
		Where(query, args...).
		First(&courseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	return toCourseDomain(&courseM), nil
}

// FindTreeByUUID retrieves a course with its active modules and lessons in display order.
func (repo *courseRepository) FindTreeByUUID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Instructor.User").
		Preload("Modules", activeInOrder).
		Preload("Modules.Lessons", activeInOrder).
		Where("uuid = ?", id).
		First(&courseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course tree")
	}

	return toCourseDomain(&courseM), nil
}

// Create persists a new course with a fresh UUID when none is set.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	course.Normalize()
	if course.UUID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return errors.Wrap(err, "failed to generate course uuid")
		}
		course.UUID = id
	}

	courseM := fromCourseDomain(course)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(courseM).Error; err != nil {
		if mapped := mapCourseConstraintError(err); mapped != nil {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	course.ID = courseM.ID
	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// Update saves every column of an existing course. The UUID never changes.
func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	course.Normalize()

	courseM := fromCourseDomain(course)
	result := repo.db.WithContext(ctx).Model(courseM).
		Select("*").
		Omit("created_at", "uuid", clause.Associations).
		Updates(courseM)
	if result.Error != nil {
		if mapped := mapCourseConstraintError(result.Error); mapped != nil {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update course")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// CountActiveByInstructor returns the number of active courses taught by the instructor.
func (repo *courseRepository) CountActiveByInstructor(ctx context.Context, instructorID uint64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.CourseModel{}).
		Where("instructor_id = ? AND active", instructorID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count instructor courses")
	}

	return count, nil
}

func activeInOrder(db *gorm.DB) *gorm.DB {
	return db.Where("active").Order("sort_order ASC")
}

func mapCourseConstraintError(err error) error {
	if !isForeignKeyConstraintViolation(err) {
		return nil
	}

	switch violatedConstraint(err) {
	case constraintCoursesInstructor:
		return domainerrors.ErrInstructorNotFound.WithField("instructor_id", "does not exist")
	case constraintCoursesCategory:
		return domainerrors.ErrCategoryNotFound.WithField("category_id", "does not exist")
	default:
		return domainerrors.ErrNotFound.WithField("course", "references a missing record")
	}
}

func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	course := &entity.Course{
		ID:               data.ID,
		UUID:             data.UUID,
		Title:            data.Title,
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		CategoryID:       data.CategoryID,
		Category:         toCategoryDomain(data.Category),
		InstructorID:     data.InstructorID,
		Instructor:       toInstructorDomain(data.Instructor),
		CoverImageURL:    data.CoverImageURL,
		IntroVideoURL:    data.IntroVideoURL,
		Modality:         entity.Modality(data.Modality),
		Level:            entity.Level(data.Level),
		DurationHours:    data.DurationHours,
		Price:            data.Price,
		IsFree:           data.IsFree,
		Featured:         data.Featured,
		Active:           data.Active,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Rating.Valid {
		rating := data.Rating.Decimal
		course.Rating = &rating
	}
	if len(data.Modules) > 0 {
		course.Modules = make([]*entity.Module, 0, len(data.Modules))
		for i := range data.Modules {
			course.Modules = append(course.Modules, toModuleDomain(&data.Modules[i]))
		}
	}

	return course
}

func fromCourseDomain(data *entity.Course) *model.CourseModel {
	if data == nil {
		return nil
	}

	courseM := &model.CourseModel{
		ID:               data.ID,
		UUID:             data.UUID,
		Title:            data.Title,
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		CategoryID:       data.CategoryID,
		InstructorID:     data.InstructorID,
		CoverImageURL:    data.CoverImageURL,
		IntroVideoURL:    data.IntroVideoURL,
		Modality:         string(data.Modality),
		Level:            string(data.Level),
		DurationHours:    data.DurationHours,
		Price:            data.Price,
		IsFree:           data.IsFree,
		Featured:         data.Featured,
		Active:           data.Active,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Rating != nil {
		courseM.Rating = decimal.NewNullDecimal(*data.Rating)
	}

	return courseM
}
