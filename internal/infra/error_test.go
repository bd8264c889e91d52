//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, nil, infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: pgconv.CodeUniqueViolation}, nil, infra.KindDuplicateKey},
		{"foreign key", &pgconn.PgError{Code: pgconv.CodeForeignKeyViolation}, nil, infra.KindForeignKeyViolated},
		{"exclusion", &pgconn.PgError{Code: pgconv.CodeExclusionViolation}, nil, infra.KindConflict},
		{"anything else", errors.New("boom"), nil, infra.KindDBFailure},
		{"explicit kind wins", errors.New("boom"), []infra.RepositoryErrorKind{infra.KindNotFound}, infra.KindNotFound},
		{"nil cause", nil, []infra.RepositoryErrorKind{infra.KindNotFound}, infra.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.want))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}
