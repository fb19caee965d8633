package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingQuerier struct {
	sql  string
	args []any
	tag  pgconn.CommandTag
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return q.tag, nil
}

func (q *recordingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *recordingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Dining Out", sanitizeString("  Dining  Out\t"))
	assert.Equal(t, "Rent", sanitizeString("Re\u200bnt"))
	assert.Equal(t, "", sanitizeString(" \n "))
}

func TestUpdateSet_Exec(t *testing.T) {
	id := uuid.New()
	q := &recordingQuerier{tag: pgconn.NewCommandTag("UPDATE 1")}

	var set updateSet
	set.add("amount", 10)
	set.add("category_id", nil)
	set.cols = append(set.cols, "updated_at = now()")

	found, err := set.exec(context.Background(), q, "transactions", 7, id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "UPDATE transactions SET amount = $1, category_id = $2, updated_at = now() WHERE user_id = $3 AND id = $4", q.sql)
	assert.Equal(t, []any{10, nil, int64(7), id}, q.args)
}

func TestUpdateSet_ExecByUserOnly(t *testing.T) {
	q := &recordingQuerier{tag: pgconn.NewCommandTag("UPDATE 0")}

	var set updateSet
	set.add("needs_percentage", 60)

	found, err := set.exec(context.Background(), q, "financial_profiles", 7, nil)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "UPDATE financial_profiles SET needs_percentage = $1 WHERE user_id = $2", q.sql)
}
