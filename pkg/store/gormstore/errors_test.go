package gormstore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sarefinport/sarefinport/pkg/store"
)

func TestClassify(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "record not found", err: gorm.ErrRecordNotFound, want: store.ErrNotFound},
		{name: "wrapped not found", err: fmt.Errorf("tx: %w", gorm.ErrRecordNotFound), want: store.ErrNotFound},
		{name: "gorm duplicate", err: gorm.ErrDuplicatedKey, want: store.ErrConflict},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, want: store.ErrValidation},
		{name: "pg unique", err: &pgconn.PgError{Code: "23505"}, want: store.ErrConflict},
		{name: "pg foreign key", err: &pgconn.PgError{Code: "23503"}, want: store.ErrValidation},
		{name: "pg not null", err: &pgconn.PgError{Code: "23502"}, want: store.ErrValidation},
		{name: "pg bad text", err: &pgconn.PgError{Code: "22P02"}, want: store.ErrValidation},
		{name: "sqlite unique", err: errors.New("UNIQUE constraint failed: projects.id"), want: store.ErrConflict},
		{name: "sqlite foreign key", err: errors.New("FOREIGN KEY constraint failed"), want: store.ErrValidation},
		{name: "sqlite not null", err: errors.New("NOT NULL constraint failed: skills.title"), want: store.ErrValidation},
		{name: "already classified", err: fmt.Errorf("%w: name", store.ErrValidation), want: store.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("unknown stays internal", func(t *testing.T) {
		got := classify(other)
		assert.Same(t, other, got)

		pgOther := &pgconn.PgError{Code: "53300"}
		assert.Same(t, error(pgOther), classify(pgOther))
	})
}
