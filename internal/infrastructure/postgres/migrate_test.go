package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/db?sslmode=disable", migrateURL("postgres://u:p@h:5432/db?sslmode=disable"))
	assert.Equal(t, "pgx5://u@h/db", migrateURL("postgresql://u@h/db"))
	assert.Equal(t, "pgx5://h/db", migrateURL("pgx5://h/db"))
}

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.sql())

	w.add(`type = ?`, "sangria")
	w.add(`(a ILIKE ? OR b ILIKE ?)`, "%x%", "%x%")
	limit := w.arg(10)

	assert.Equal(t, " WHERE type = $1 AND (a ILIKE $2 OR b ILIKE $3)", w.sql())
	assert.Equal(t, "$4", limit)
	assert.Len(t, w.args, 4)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
}

func TestRedactDSN(t *testing.T) {
	assert.Equal(t, "postgres://app:xxxxx@db:5432/pos", RedactDSN("postgres://app:secret@db:5432/pos"))
	assert.Equal(t, "postgres://db/pos", RedactDSN("postgres://db/pos"))
}
