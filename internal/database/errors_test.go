package database_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/midas/internal/database"
)

func TestForeignKeyConstraint(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantConstraint string
		wantOK         bool
	}{
		{
			name:           "Wrapped",
			err:            fmt.Errorf("creating outflow: %w", &pgconn.PgError{Code: "23503", ConstraintName: "outflows_category_id_fkey"}),
			wantConstraint: "outflows_category_id_fkey",
			wantOK:         true,
		},
		{
			name: "Unique",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
		},
		{
			name: "Plain",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := database.ForeignKeyConstraint(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantConstraint, got)
			assert.Equal(t, tt.wantOK, database.IsForeignKeyViolation(tt.err))
		})
	}
}
