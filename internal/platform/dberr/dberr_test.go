// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/platform/dberr"
)

/*
TestWrap maps pgx and PostgreSQL errors to application errors.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"no_rows", pgx.ErrNoRows, apperr.CodeNotFound},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, apperr.CodeConflict},
		{"check", &pgconn.PgError{Code: pgerrcode.CheckViolation}, apperr.CodeUnprocessable},
		{"not_null", &pgconn.PgError{Code: pgerrcode.NotNullViolation}, apperr.CodeUnprocessable},
		{"other_pg", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, apperr.CodeInternal},
		{"driver", errors.New("conn closed"), apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appError := apperr.As(dberr.Wrap(tt.err, "Recipe", "get_recipe"))
			require.NotNil(t, appError)
			assert.Equal(t, tt.code, appError.Code)
			assert.NotContains(t, appError.Message, "conn closed")
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "Recipe", "get_recipe"))
	assert.Equal(t, "Recipe not found", dberr.Wrap(pgx.ErrNoRows, "Recipe", "get_recipe").Error())
}
