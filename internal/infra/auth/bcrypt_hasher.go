// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"academia/config"
	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxBcryptPasswordLength = 72
)

var forbiddenPasswords = map[string]struct{}{
	"password":  {},
	"password1": {},
	"12345678":  {},
	"123456789": {},
	"qwerty123": {},
	"iloveyou":  {},
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost: bcrypt.DefaultCost,
		policy: config.PasswordStrengthConfig{
			MinLength:        defaultMinPasswordLength,
			MaxLength:        maxBcryptPasswordLength,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}
	if cfg == nil {
		return hasher
	}

	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if cfg.PasswordStrength != nil {
		hasher.policy = *cfg.PasswordStrength
		if hasher.policy.MinLength <= 0 {
			hasher.policy.MinLength = defaultMinPasswordLength
		}
		if hasher.policy.MaxLength <= 0 || hasher.policy.MaxLength > maxBcryptPasswordLength {
			hasher.policy.MaxLength = maxBcryptPasswordLength
		}
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if reason := h.policyViolation(password); reason != "" {
		return domainerrors.ErrPasswordStrength.WithField("password", reason)
	}

	return nil
}

func (h *bcryptHasher) policyViolation(password string) string {
	length := len(password)
	if length < h.policy.MinLength {
		return fmt.Sprintf("must be at least %d characters", h.policy.MinLength)
	}
	if length > h.policy.MaxLength {
		return fmt.Sprintf("must be at most %d characters", h.policy.MaxLength)
	}
	if _, forbidden := forbiddenPasswords[strings.ToLower(password)]; forbidden {
		return "is too common"
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case h.policy.RequireUppercase && !hasUpper:
		return "must contain an uppercase letter"
	case h.policy.RequireLowercase && !hasLower:
		return "must contain a lowercase letter"
	case h.policy.RequireNumbers && !hasNumber:
		return "must contain a number"
	case h.policy.RequireSpecial && !hasSpecial:
		return "must contain a special character"
	}

	return ""
}
