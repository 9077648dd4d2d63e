package entity

import domainerrors "academia/internal/domain/errors"

// FieldErrors is the validation accumulator used by entity Validate methods.
type FieldErrors = domainerrors.FieldErrors
