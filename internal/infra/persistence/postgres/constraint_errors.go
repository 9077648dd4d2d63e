package postgres

import (
	"academia/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Constraint names declared by the persistence models. Foreign keys follow
// GORM's fk_<table>_<relation> naming.
const (
	constraintUsersUsername      = "idx_users_username"
	constraintUsersHandle        = "idx_users_handle_lower"
	constraintCoursesCategory    = "fk_courses_category"
	constraintCoursesInstructor  = "fk_courses_instructor"
	constraintModulesCourseOrder = "idx_modules_course_order"
	constraintLessonsModuleOrder = "idx_lessons_module_order"
)

// constraintViolation describes a failed integrity constraint.
type constraintViolation struct {
	code       string
	constraint string
}

// asConstraintViolation extracts the SQLSTATE and constraint name from a driver error.
// When the dialector translates errors, only the code is known.
func asConstraintViolation(err error) (constraintViolation, bool) {
	if err == nil {
		return constraintViolation{}, false
	}

	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return constraintViolation{code: pgErr.Code, constraint: pgErr.ConstraintName}, true
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return constraintViolation{code: pgUniqueViolation}, true
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return constraintViolation{code: pgForeignKeyViolation}, true
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return constraintViolation{code: pgCheckViolation}, true
	}

	return constraintViolation{}, false
}

func isUniqueConstraintViolation(err error) bool {
	v, ok := asConstraintViolation(err)

	return ok && v.code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	v, ok := asConstraintViolation(err)

	return ok && v.code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	v, ok := asConstraintViolation(err)

	return ok && v.code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	v, ok := asConstraintViolation(err)

	return ok && v.code == pgCheckViolation
}

// violatedConstraint returns the name of the violated constraint, or "" when unknown.
func violatedConstraint(err error) string {
	v, _ := asConstraintViolation(err)

	return v.constraint
}
