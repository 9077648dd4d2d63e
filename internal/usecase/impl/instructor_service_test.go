package impl

import (
	"context"
	"testing"
	"time"

	"academia/internal/domain/entity"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/domain/service"
	"academia/internal/errors"
	mockRepo "academia/internal/mocks/repository"
	mockSvc "academia/internal/mocks/service"
	"academia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminActor   = &usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
	studentActor = &usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleStudent}}
)

type instructorFixture struct {
	txManager      *mockRepo.MockTransactionManager
	repos          *txRepos
	instructorRepo *mockRepo.MockInstructorRepository
	courses        *mockRepo.MockCourseRepository
	cache          *mockSvc.MockCourseCache
	hasher         *mockSvc.MockPasswordHasher
	publisher      *mockSvc.MockEventPublisher
	metrics        *mockSvc.MockMetricsRecorder
	service        usecase.InstructorUsecase
}

func newInstructorFixture(t *testing.T) *instructorFixture {
	t.Helper()

	f := &instructorFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		repos:          newTxRepos(t),
		instructorRepo: mockRepo.NewMockInstructorRepository(t),
		courses:        mockRepo.NewMockCourseRepository(t),
		cache:          mockSvc.NewMockCourseCache(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		metrics:        mockSvc.NewMockMetricsRecorder(t),
	}
	svc := NewInstructorService(InstructorServiceParams{
		TxManager:      f.txManager,
		InstructorRepo: f.instructorRepo,
		CourseRepo:     f.courses,
		Hasher:         f.hasher,
		Cache:          f.cache,
		Publisher:      f.publisher,
		Metrics:        f.metrics,
		Logger:         newDiscardLogger(),
	})
	svc.(*instructorService).now = func() time.Time { return fixedNow }
	f.service = svc

	return f
}

func createInstructorInput(birth time.Time) *usecase.CreateInstructorInput {
	return &usecase.CreateInstructorInput{
		Email:           "Luis.Perez@Example.com",
		Username:        "Luis.Perez",
		FirstName:       "Luis",
		LastName:        "Perez",
		BirthDate:       birth,
		Country:         "MX",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		Specialty:       "Distributed systems",
		ExtendedBio:     "Fifteen years building backends",
		ExperienceYears: 15,
	}
}

// expectInstructorWrites wires a successful creation transaction.
func (f *instructorFixture) expectInstructorWrites(ctx context.Context, userID uuid.UUID) {
	f.hasher.EXPECT().ValidatePasswordStrength("Str0ng!pass").Return(nil)
	f.hasher.EXPECT().Hash("Str0ng!pass").Return("hashed", nil)
	expectTx(f.txManager, f.repos.factory)
	f.repos.users.EXPECT().ExistsByEmail(ctx, "luis.perez@example.com").Return(false, nil)
	f.repos.users.EXPECT().ExistsByUsername(ctx, "luis.perez").Return(false, nil)
	f.repos.users.EXPECT().ExistsByHandle(ctx, "luis.perez", uuid.Nil).Return(false, nil)
	f.repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = userID
			u.RefreshDerived(fixedNow)

			return nil
		})
	f.repos.auths.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil)
	f.repos.instructors.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Instructor")).
		RunAndReturn(func(_ context.Context, i *entity.Instructor) error {
			i.ID = 7

			return nil
		})
	f.metrics.EXPECT().UserRegistered(registrationInstructor).Return()
	f.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
		return e.Type == service.EventInstructorCreated && e.AggregateID == userID.String()
	})).Return(nil)
	f.metrics.EXPECT().EventPublished(service.EventInstructorCreated, true).Return()
}

func TestInstructorService_CreateInstructor_MinimumAge(t *testing.T) {
	tests := []struct {
		name    string
		birth   time.Time
		wantErr bool
	}{
		{name: "seventeen years old", birth: birthDate(2007, time.June, 2), wantErr: true},
		{name: "eighteenth birthday", birth: birthDate(2007, time.June, 1), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInstructorFixture(t)
			ctx := context.Background()
			userID := uuid.New()
			if !tt.wantErr {
				f.expectInstructorWrites(ctx, userID)
			}

			instructor, err := f.service.CreateInstructor(ctx, adminActor, createInstructorInput(tt.birth))

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, fieldsOf(t, err), "birth_date")
				f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint64(7), instructor.ID)
			assert.Equal(t, userID, instructor.UserID)
			assert.Equal(t, entity.RoleInstructor, instructor.User.Role)
			assert.Equal(t, "luis.perez", instructor.User.Handle)
			assert.True(t, instructor.User.ProfileComplete)
			assert.True(t, instructor.ProfileComplete())
		})
	}
}

func TestInstructorService_CreateInstructor_ValidationFields(t *testing.T) {
	f := newInstructorFixture(t)
	input := createInstructorInput(birthDate(1980, time.January, 1))
	input.Username = "luis perez"
	input.Specialty = ""
	input.ExperienceYears = 61
	input.ConfirmPassword = "other"

	_, err := f.service.CreateInstructor(context.Background(), adminActor, input)

	require.Error(t, err)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "specialty")
	assert.Contains(t, fields, "experience_years")
	assert.Contains(t, fields, "confirm_password")
}

func TestInstructorService_CreateInstructor_UsernameTaken(t *testing.T) {
	f := newInstructorFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	expectTx(f.txManager, f.repos.factory)
	f.repos.users.EXPECT().ExistsByEmail(ctx, "luis.perez@example.com").Return(false, nil)
	f.repos.users.EXPECT().ExistsByUsername(ctx, "luis.perez").Return(true, nil)

	_, err := f.service.CreateInstructor(ctx, adminActor, createInstructorInput(birthDate(1980, time.January, 1)))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	f.repos.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInstructorService_RequiresAdmin(t *testing.T) {
	f := newInstructorFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateInstructor(ctx, studentActor, createInstructorInput(birthDate(1980, time.January, 1)))
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = f.service.ListInstructors(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	err = f.service.DeactivateInstructor(ctx, studentActor, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestInstructorService_UpdateInstructor(t *testing.T) {
	f := newInstructorFixture(t)
	ctx := context.Background()
	existing := &entity.Instructor{ID: 7, Specialty: "Go", ExtendedBio: "Bio", ExperienceYears: 3}

	expectTx(f.txManager, f.repos.factory)
	f.repos.instructors.EXPECT().FindByID(ctx, uint64(7)).Return(existing, nil)
	f.repos.instructors.EXPECT().Update(ctx, existing).Return(nil)
	courseID := uuid.New()
	f.courses.EXPECT().ListUUIDs(ctx, mock.MatchedBy(func(filter repository.CourseFilter) bool {
		return filter.InstructorID != nil && *filter.InstructorID == 7
	})).Return([]uuid.UUID{courseID}, nil)
	f.cache.EXPECT().Invalidate(ctx, courseID).Return(nil)

	got, err := f.service.UpdateInstructor(ctx, adminActor, 7, &usecase.UpdateInstructorInput{
		Specialty:       ptr(" Cloud "),
		ExperienceYears: ptr(5),
	})

	require.NoError(t, err)
	assert.Equal(t, "Cloud", got.Specialty)
	assert.Equal(t, 5, got.ExperienceYears)
	assert.Equal(t, "Bio", got.ExtendedBio)
}

func TestInstructorService_DeactivateInstructor(t *testing.T) {
	f := newInstructorFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleInstructor, Active: true}
	instructor := &entity.Instructor{ID: 7, UserID: user.ID, User: user}

	expectTx(f.txManager, f.repos.factory)
	f.repos.instructors.EXPECT().FindByID(ctx, uint64(7)).Return(instructor, nil)
	f.repos.users.EXPECT().Update(ctx, user).Return(nil)
	f.repos.refreshToken.EXPECT().DeleteRefreshTokensByUserID(ctx, user.ID).Return(nil)
	f.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
		return e.Type == service.EventInstructorDeactivated
	})).Return(nil)
	f.metrics.EXPECT().EventPublished(service.EventInstructorDeactivated, true).Return()
	courseID := uuid.New()
	f.courses.EXPECT().ListUUIDs(ctx, mock.MatchedBy(func(filter repository.CourseFilter) bool {
		return filter.InstructorID != nil && *filter.InstructorID == 7
	})).Return([]uuid.UUID{courseID}, nil)
	f.cache.EXPECT().Invalidate(ctx, courseID).Return(nil)

	err := f.service.DeactivateInstructor(ctx, adminActor, 7)

	require.NoError(t, err)
	assert.False(t, user.Active)
}

func TestInstructorService_DeactivateInstructor_NotFound(t *testing.T) {
	f := newInstructorFixture(t)
	ctx := context.Background()

	expectTx(f.txManager, f.repos.factory)
	f.repos.instructors.EXPECT().FindByID(ctx, uint64(99)).Return(nil, repository.ErrInstructorNotFound)

	err := f.service.DeactivateInstructor(ctx, adminActor, 99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInstructorNotFound))
}

func TestInstructorService_PublicDirectory(t *testing.T) {
	eligible := &entity.Instructor{
		ID:          1,
		Specialty:   "Go",
		ExtendedBio: "Bio",
		User:        &entity.User{Active: true, ProfileComplete: true},
	}
	noBio := &entity.Instructor{
		ID:        2,
		Specialty: "Go",
		User:      &entity.User{Active: true, ProfileComplete: true},
	}

	t.Run("list filters incomplete instructors", func(t *testing.T) {
		f := newInstructorFixture(t)
		ctx := context.Background()

		f.instructorRepo.EXPECT().ListAvailable(ctx).Return([]*entity.Instructor{eligible, noBio}, nil)

		got, err := f.service.ListPublicInstructors(ctx)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint64(1), got[0].ID)
	})

	t.Run("hidden instructor is not found", func(t *testing.T) {
		f := newInstructorFixture(t)
		ctx := context.Background()

		f.instructorRepo.EXPECT().FindByID(ctx, uint64(2)).Return(noBio, nil)

		_, err := f.service.GetPublicInstructor(ctx, 2)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInstructorNotFound))
	})
}
