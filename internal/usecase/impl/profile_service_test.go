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

type profileFixture struct {
	txManager      *mockRepo.MockTransactionManager
	repos          *txRepos
	userRepo       *mockRepo.MockUserRepository
	instructorRepo *mockRepo.MockInstructorRepository
	publisher      *mockSvc.MockEventPublisher
	service        usecase.ProfileUsecase
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()

	f := &profileFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		repos:          newTxRepos(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		instructorRepo: mockRepo.NewMockInstructorRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}
	svc := NewProfileService(ProfileServiceParams{
		TxManager:      f.txManager,
		UserRepo:       f.userRepo,
		InstructorRepo: f.instructorRepo,
		Publisher:      f.publisher,
		Logger:         newDiscardLogger(),
	})
	svc.(*profileService).now = func() time.Time { return fixedNow }
	f.service = svc

	return f
}

// expectUserUpdate persists the user the way the store does, recomputing derived fields.
func (f *profileFixture) expectUserUpdate(ctx context.Context) {
	f.repos.users.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.RefreshDerived(fixedNow)

			return nil
		})
}

func completeProfileInput(birth time.Time) *usecase.CompleteProfileInput {
	return &usecase.CompleteProfileInput{
		FirstName: ptr("Ana"),
		LastName:  ptr("Gomez"),
		BirthDate: &birth,
		Handle:    ptr("Ana.Gomez"),
		Country:   ptr("AR"),
	}
}

func TestProfileService_CompleteProfile_MinimumAge(t *testing.T) {
	tests := []struct {
		name    string
		birth   time.Time
		wantErr bool
	}{
		{name: "twelve years old", birth: birthDate(2012, time.June, 2), wantErr: true},
		{name: "thirteenth birthday", birth: birthDate(2012, time.June, 1), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProfileFixture(t)
			ctx := context.Background()
			user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Role: entity.RoleStudent, Active: true}

			expectTx(f.txManager, f.repos.factory)
			f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			if !tt.wantErr {
				f.repos.users.EXPECT().ExistsByHandle(ctx, "ana.gomez", user.ID).Return(false, nil)
				f.expectUserUpdate(ctx)
				f.publisher.EXPECT().Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
					return e.Type == service.EventProfileCompleted
				})).Return(nil)
			}

			got, err := f.service.CompleteProfile(ctx, user.ID, completeProfileInput(tt.birth), false)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
				assert.Contains(t, fieldsOf(t, err), "birth_date")
				f.repos.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.ProfileComplete)
			assert.Equal(t, "ana.gomez", got.Handle)
			require.NotNil(t, got.Age)
			assert.Equal(t, 13, *got.Age)
		})
	}
}

func TestProfileService_CompleteProfile_MissingFields(t *testing.T) {
	f := newProfileFixture(t)

	_, err := f.service.CompleteProfile(context.Background(), uuid.New(), &usecase.CompleteProfileInput{
		FirstName: ptr("Ana"),
		Handle:    ptr("   "),
	}, false)

	require.Error(t, err)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "last_name")
	assert.Contains(t, fields, "handle")
	assert.Contains(t, fields, "country")
	assert.Contains(t, fields, "birth_date")
	assert.NotContains(t, fields, "first_name")
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProfileService_CompleteProfile_AlreadyComplete(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), ProfileComplete: true, Active: true}

	expectTx(f.txManager, f.repos.factory)
	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := f.service.CompleteProfile(ctx, user.ID, completeProfileInput(birthDate(1990, time.January, 1)), false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyComplete))
}

func TestProfileService_CompleteProfile_PartialOnCompleteProfile(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	birth := birthDate(1990, time.January, 1)
	user := &entity.User{
		ID:              uuid.New(),
		Email:           "ana@example.com",
		FirstName:       "Ana",
		LastName:        "Gomez",
		BirthDate:       &birth,
		Handle:          "ana.gomez",
		Country:         "AR",
		ProfileComplete: true,
		Active:          true,
	}

	expectTx(f.txManager, f.repos.factory)
	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.expectUserUpdate(ctx)

	got, err := f.service.CompleteProfile(ctx, user.ID, &usecase.CompleteProfileInput{
		ProfileFields: usecase.ProfileFields{Biography: ptr(" Backend developer ")},
	}, true)

	require.NoError(t, err)
	assert.Equal(t, "Backend developer", got.Biography)
	assert.True(t, got.ProfileComplete)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProfileService_CompleteProfile_HandleTaken(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Active: true}

	expectTx(f.txManager, f.repos.factory)
	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.repos.users.EXPECT().ExistsByHandle(ctx, "ana.gomez", user.ID).Return(true, nil)

	_, err := f.service.CompleteProfile(ctx, user.ID, completeProfileInput(birthDate(1990, time.January, 1)), false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHandleTaken))
	assert.Contains(t, fieldsOf(t, err), "handle")
}

func TestProfileService_CompleteProfile_InvalidPhoneAndHandle(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Active: true}
	input := completeProfileInput(birthDate(1990, time.January, 1))
	input.Handle = ptr("ana gomez!")
	input.Phone = ptr("12-34")

	expectTx(f.txManager, f.repos.factory)
	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := f.service.CompleteProfile(ctx, user.ID, input, false)

	require.Error(t, err)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "handle")
	assert.Contains(t, fields, "phone")
}

func TestProfileService_UpdateProfile_RejectsFutureBirthDate(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Active: true}
	future := fixedNow.AddDate(0, 0, 1)

	expectTx(f.txManager, f.repos.factory)
	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := f.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{BirthDate: &future})

	require.Error(t, err)
	assert.Equal(t, "cannot be in the future", fieldsOf(t, err)["birth_date"])
}

func TestProfileService_UpdateProfile_KeepsHandle(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Handle: "ana.gomez", Active: true}

	expectTx(f.txManager, f.repos.factory)
	f.repos.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.expectUserUpdate(ctx)

	got, err := f.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{FirstName: ptr("  Ana María ")})

	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.FirstName)
	assert.Equal(t, "ana.gomez", got.Handle)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetProfile(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_ProfileStatus_SuggestsHandle(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", FirstName: "Ana", LastName: "Gomez", Role: entity.RoleStudent}

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.userRepo.EXPECT().ExistsByHandle(ctx, "ana.gomez", user.ID).Return(true, nil)
	f.userRepo.EXPECT().ExistsByHandle(ctx, "ana.gomez1", user.ID).Return(false, nil)

	status, err := f.service.ProfileStatus(ctx, user.ID)

	require.NoError(t, err)
	assert.False(t, status.ProfileComplete)
	assert.Equal(t, "ana.gomez1", status.SuggestedHandle)
	assert.Equal(t, usecase.NextStepCompleteProfile, status.NextStep)
	assert.Equal(t, []string{"Birth date", "Handle", "Country"}, status.MissingFields)
	assert.False(t, status.IsInstructor)
	assert.Nil(t, status.InstructorProfileComplete)
}

func TestProfileService_ProfileStatus_SuggestsHandleWhenOneIsSet(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	user := &entity.User{
		ID:        uuid.New(),
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Gomez",
		Handle:    "anita",
		Role:      entity.RoleStudent,
	}

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.userRepo.EXPECT().ExistsByHandle(ctx, "ana.gomez", user.ID).Return(false, nil)

	status, err := f.service.ProfileStatus(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, "ana.gomez", status.SuggestedHandle)
	assert.Equal(t, "anita", user.Handle)
}

func TestProfileService_ProfileStatus_NoSuggestionWithoutNames(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", FirstName: "Ana"}

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	status, err := f.service.ProfileStatus(ctx, user.ID)

	require.NoError(t, err)
	assert.Empty(t, status.SuggestedHandle)
	f.userRepo.AssertNotCalled(t, "ExistsByHandle", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_ProfileStatus_Instructor(t *testing.T) {
	birth := birthDate(1985, time.March, 3)
	instructorUser := func() *entity.User {
		return &entity.User{
			ID:              uuid.New(),
			Email:           "docente@example.com",
			FirstName:       "Luis",
			LastName:        "Perez",
			BirthDate:       &birth,
			Handle:          "luis.perez",
			Country:         "MX",
			Role:            entity.RoleInstructor,
			ProfileComplete: true,
			Active:          true,
		}
	}

	t.Run("missing instructor record", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()
		user := instructorUser()

		f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		f.instructorRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, repository.ErrInstructorNotFound)

		status, err := f.service.ProfileStatus(ctx, user.ID)

		require.NoError(t, err)
		assert.True(t, status.IsInstructor)
		require.NotNil(t, status.InstructorProfileComplete)
		assert.False(t, *status.InstructorProfileComplete)
	})

	t.Run("complete instructor record", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()
		user := instructorUser()

		f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		f.instructorRepo.EXPECT().FindByUserID(ctx, user.ID).
			Return(&entity.Instructor{ID: 4, UserID: user.ID, Specialty: "Go", ExtendedBio: "Bio"}, nil)

		status, err := f.service.ProfileStatus(ctx, user.ID)

		require.NoError(t, err)
		assert.Empty(t, status.NextStep)
		require.NotNil(t, status.InstructorProfileComplete)
		assert.True(t, *status.InstructorProfileComplete)
	})
}

func TestProfileService_CheckHandleAvailability(t *testing.T) {
	userID := uuid.New()

	t.Run("available", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.userRepo.EXPECT().ExistsByHandle(ctx, "ana.gomez", userID).Return(false, nil)

		out, err := f.service.CheckHandleAvailability(ctx, userID, "Ana.Gomez")

		require.NoError(t, err)
		assert.True(t, out.Available)
		assert.Equal(t, "ana.gomez", out.Handle)
		assert.Equal(t, "Handle is available", out.Message)
	})

	t.Run("taken", func(t *testing.T) {
		f := newProfileFixture(t)
		ctx := context.Background()

		f.userRepo.EXPECT().ExistsByHandle(ctx, "ana.gomez", userID).Return(true, nil)

		out, err := f.service.CheckHandleAvailability(ctx, userID, "ana.gomez")

		require.NoError(t, err)
		assert.False(t, out.Available)
		assert.Equal(t, "Handle is already taken", out.Message)
	})

	t.Run("invalid format", func(t *testing.T) {
		f := newProfileFixture(t)

		out, err := f.service.CheckHandleAvailability(context.Background(), userID, "ana gomez")

		require.NoError(t, err)
		assert.False(t, out.Available)
		f.userRepo.AssertNotCalled(t, "ExistsByHandle", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty", func(t *testing.T) {
		f := newProfileFixture(t)

		_, err := f.service.CheckHandleAvailability(context.Background(), userID, " ")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRequest))
	})
}
