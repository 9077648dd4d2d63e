package repository

import "context"

// TransactionManager runs a unit of work against the primary database.
// Whole-course replacement and module-with-lessons creation go through it,
// so a failing lesson insert leaves no module behind.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise, returning fn's error.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
	CategoryRepo() CategoryRepository
	CourseRepo() CourseRepository
	ModuleRepo() ModuleRepository
	LessonRepo() LessonRepository
	InstructorRepo() InstructorRepository
}
