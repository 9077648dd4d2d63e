package handler

import (
	"strconv"
	"strings"
	"time"

	domainerrors "academia/internal/domain/errors"
	"academia/internal/domain/repository"
	"academia/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.NewValidationError(name, "must be a positive integer")
	}

	return id, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(name, "must be a valid UUID")
	}

	return id, nil
}

// pagination reads page and page_size from the query string.
func pagination(c echo.Context) (repository.Pagination, error) {
	var page repository.Pagination
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("page_size", &page.PageSize).
		BindError()
	if err != nil {
		return page, domainerrors.NewValidationError(bindErrorField(err), "must be an integer")
	}

	return page.Normalize(), nil
}

// queryParser collects typed optional query parameters and remembers the first failure per field.
type queryParser struct {
	c    echo.Context
	errs domainerrors.FieldErrors
}

func newQueryParser(c echo.Context) *queryParser {
	return &queryParser{c: c, errs: domainerrors.FieldErrors{}}
}

func (q *queryParser) string(name string) string {
	return strings.TrimSpace(q.c.QueryParam(name))
}

func (q *queryParser) uint64(name string) *uint64 {
	raw := q.string(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		q.errs.Add(name, "must be a positive integer")

		return nil
	}

	return &v
}

func (q *queryParser) int(name string) *int {
	raw := q.string(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.errs.Add(name, "must be an integer")

		return nil
	}

	return &v
}

func (q *queryParser) bool(name string) *bool {
	raw := q.string(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.errs.Add(name, "must be true or false")

		return nil
	}

	return &v
}

func (q *queryParser) decimal(name string) *decimal.Decimal {
	raw := q.string(name)
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		q.errs.Add(name, "must be a decimal number")

		return nil
	}

	return &v
}

func (q *queryParser) err() error {
	return q.errs.Err()
}

// parseDate parses an optional YYYY-MM-DD value into field errors.
func parseDate(errs domainerrors.FieldErrors, field string, raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		errs.Add(field, "must be a date in the form YYYY-MM-DD")

		return nil
	}

	return &t
}

func bindErrorField(err error) string {
	if be, ok := errors.AsType[*echo.BindingError](err); ok && be.Field != "" {
		return be.Field
	}

	return "query"
}

func newOrderingError(allowed string) error {
	return domainerrors.NewValidationError("ordering", "must be one of "+allowed+", optionally prefixed with -")
}
