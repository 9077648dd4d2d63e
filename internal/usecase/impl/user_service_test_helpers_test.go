package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"academia/config"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/errors"
	mockRepo "academia/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

// fixedNow is the clock of every use case test.
var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func birthDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// expectTx runs every transaction callback against factory and returns its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// txRepos is a repository factory whose repositories are all mocks.
type txRepos struct {
	factory      *mockRepo.MockRepositoryFactory
	users        *mockRepo.MockUserRepository
	auths        *mockRepo.MockAuthRepository
	refreshToken *mockRepo.MockRefreshTokenRepository
	categories   *mockRepo.MockCategoryRepository
	courses      *mockRepo.MockCourseRepository
	modules      *mockRepo.MockModuleRepository
	lessons      *mockRepo.MockLessonRepository
	instructors  *mockRepo.MockInstructorRepository
}

func newTxRepos(t *testing.T) *txRepos {
	t.Helper()

	repos := &txRepos{
		factory:      mockRepo.NewMockRepositoryFactory(t),
		users:        mockRepo.NewMockUserRepository(t),
		auths:        mockRepo.NewMockAuthRepository(t),
		refreshToken: mockRepo.NewMockRefreshTokenRepository(t),
		categories:   mockRepo.NewMockCategoryRepository(t),
		courses:      mockRepo.NewMockCourseRepository(t),
		modules:      mockRepo.NewMockModuleRepository(t),
		lessons:      mockRepo.NewMockLessonRepository(t),
		instructors:  mockRepo.NewMockInstructorRepository(t),
	}
	repos.factory.EXPECT().UserRepo().Return(repos.users).Maybe()
	repos.factory.EXPECT().AuthRepo().Return(repos.auths).Maybe()
	repos.factory.EXPECT().RefreshTokenRepo().Return(repos.refreshToken).Maybe()
	repos.factory.EXPECT().CategoryRepo().Return(repos.categories).Maybe()
	repos.factory.EXPECT().CourseRepo().Return(repos.courses).Maybe()
	repos.factory.EXPECT().ModuleRepo().Return(repos.modules).Maybe()
	repos.factory.EXPECT().LessonRepo().Return(repos.lessons).Maybe()
	repos.factory.EXPECT().InstructorRepo().Return(repos.instructors).Maybe()

	return repos
}

// fieldsOf returns the field paths and reasons carried by a validation error.
func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	appErr, ok := errors.AsType[*domainerrors.BaseError](err)
	require.True(t, ok, "expected a domain error, got %v", err)

	details, ok := appErr.Details().(map[string]any)
	require.True(t, ok, "expected field details on %v", err)

	fields, ok := details["fields"].(map[string]string)
	require.True(t, ok, "expected field details on %v", err)

	return fields
}

func ptr[T any](v T) *T {
	return &v
}
