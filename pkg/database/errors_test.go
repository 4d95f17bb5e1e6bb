package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueConstraint(t *testing.T) {
	err := fmt.Errorf("insert release: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: "releases_upc_key"})

	name, ok := UniqueConstraint(err)
	assert.True(t, ok)
	assert.Equal(t, "releases_upc_key", name)

	_, ok = UniqueConstraint(errors.New("boom"))
	assert.False(t, ok)
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: ForeignKeyViolation}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: UniqueViolation}))
}
