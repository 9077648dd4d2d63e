// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"academia/internal/domain/entity"
)

// NextStepCompleteProfile tells the client that step 2 of the registration is pending.
const NextStepCompleteProfile = "complete_profile"

// NextStepFor returns the pending registration step of user, or "" when there is none.
func NextStepFor(user *entity.User) string {
	if user == nil || user.ProfileComplete {
		return ""
	}

	return NextStepCompleteProfile
}

// --- Input DTOs ---

// RegisterStep1Input defines the credentials collected by the first registration step.
type RegisterStep1Input struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email      string
	Password   string
	DeviceInfo string
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to log out.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User     *entity.User
	NextStep string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	NextStep     string
}

// RefreshTokenOutput carries the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for registration and authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterStep1(ctx context.Context, input *RegisterStep1Input) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	CheckEmailExists(ctx context.Context, email string) (bool, error)
}
