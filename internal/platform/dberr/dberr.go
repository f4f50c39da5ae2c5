// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr classifies PostgreSQL errors as [apperr.AppError] values.
//
// Only the class of failure reaches the client; the driver error is kept as
// the cause for server-side logs.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
)

// Wrap maps err raised while performing action on resource:
//
//   - no rows              -> NOT_FOUND
//   - unique violation     -> CONFLICT
//   - check, not-null or
//     too-long value       -> UNPROCESSABLE
//   - anything else        -> INTERNAL_ERROR
//
// A nil err stays nil.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict(resource + " already exists")
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
			appError := apperr.Unprocessable(resource + " violates a storage constraint")
			appError.Cause = err
			return appError
		}
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
