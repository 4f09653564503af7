// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/makebyjordan/mbj/internal/platform/apperr"
)

var (
	// ErrNotFound is returned when a queried row doesn't exist.
	// Callers compare with [errors.Is] and replace it with a message naming their type.
	ErrNotFound = apperr.NotFound("Resource not found")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
// The action names the failed operation in the server-side cause.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint and data errors are the caller's fault
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.UniqueViolation:
			conflict := apperr.Conflict("A record with the same key already exists")
			conflict.Cause = fmt.Errorf("%s: %w", action, err)
			return conflict
		case pgerrcode.NotNullViolation:
			return fieldError(pgError.ColumnName, "This field is required", action, err)
		case pgerrcode.InvalidTextRepresentation, pgerrcode.InvalidDatetimeFormat,
			pgerrcode.DatetimeFieldOverflow, pgerrcode.NumericValueOutOfRange,
			pgerrcode.StringDataRightTruncationDataException:
			return fieldError(pgError.ColumnName, "Invalid value", action, err)
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// fieldError builds a 400 naming the offending column when Postgres reports it.
func fieldError(column, message, action string, cause error) error {
	appError := apperr.ValidationError(message)
	if column != "" {
		appError = apperr.ValidationError(column+": "+message, apperr.FieldError{Field: column, Message: message})
	}
	appError.Cause = fmt.Errorf("%s: %w", action, cause)
	return appError
}
