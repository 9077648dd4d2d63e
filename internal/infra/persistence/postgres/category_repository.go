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

const categoryWithTotalsSelect = "categories.*, " +
	"(SELECT COUNT(*) FROM courses WHERE courses.category_id = categories.id AND courses.active) AS total_courses"

// categoryRepository implements the domain.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns the matching categories with their active course totals.
func (repo *categoryRepository) List(ctx context.Context, filter repository.CategoryFilter) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Select(categoryWithTotalsSelect)

	if filter.ActiveOnly {
		query = query.Where("categories.active")
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("categories.name ILIKE ? OR categories.description ILIKE ?", pattern, pattern)
	}

	column := "categories.name"
	if filter.OrderBy == repository.CategoryOrderCreatedAt {
		column = "categories.created_at"
	}
	query = query.Order(orderExpr(column, filter.Descending)).Order("categories.id")

	var categoryMs []model.CategoryModel
	if err := query.Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, toCategoryDomain(&categoryMs[i]))
	}

	return categories, nil
}

// FindByID retrieves a category with its active course total.
func (repo *categoryRepository) FindByID(ctx context.Context, id uint64) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).
		Select(categoryWithTotalsSelect).
		Where("categories.id = ?", id).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	category.Normalize()

	categoryM := fromCategoryDomain(category)
	if err := repo.db.WithContext(ctx).Omit("total_courses").Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// Update saves every column of an existing category.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	category.Normalize()

	categoryM := fromCategoryDomain(category)
	result := repo.db.WithContext(ctx).Model(categoryM).Select("*").Omit("created_at", "total_courses").Updates(categoryM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		ColorHex:     data.ColorHex,
		Active:       data.Active,
		TotalCourses: int(data.TotalCourses),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ColorHex:    data.ColorHex,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
