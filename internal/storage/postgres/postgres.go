// internal/storage/postgres/postgres.go
package postgres

import (
	"budget-tracker/internal/domain"
	"budget-tracker/internal/storage"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

// querier is satisfied by both the pool and an open pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// sanitizeString очищает строку от невидимых и проблемных символов
func sanitizeString(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		// NO-BREAK SPACE и прочие пробелы → обычный пробел
		if unicode.IsSpace(r) {
			result = append(result, ' ')
		} else if unicode.IsPrint(r) {
			result = append(result, r)
		}
	}
	return strings.Join(strings.Fields(string(result)), " ")
}

func sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := sanitizeString(*s)
	return &clean
}

func dateArg(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func datePtr(t *time.Time) *domain.Date {
	if t == nil {
		return nil
	}
	d := domain.DateOf(*t)
	return &d
}

// updateSet собирает SET-часть UPDATE из заданных полей.
type updateSet struct {
	cols []string
	args []any
}

func (u *updateSet) add(col string, v any) {
	u.args = append(u.args, v)
	u.cols = append(u.cols, fmt.Sprintf("%s = $%d", col, len(u.args)))
}

func (u *updateSet) empty() bool {
	return len(u.cols) == 0
}

// exec runs UPDATE table SET ... WHERE user_id = ? [AND id = ?] and reports
// whether a row matched.
func (u *updateSet) exec(ctx context.Context, q querier, table string, userID int64, id any) (bool, error) {
	args := append(u.args, userID)
	where := fmt.Sprintf("user_id = $%d", len(args))
	if id != nil {
		args = append(args, id)
		where += fmt.Sprintf(" AND id = $%d", len(args))
	}

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(u.cols, ", "), where)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

var (
	_ storage.ProfileStorage     = (*Storage)(nil)
	_ storage.CategoryStorage    = (*Storage)(nil)
	_ storage.TransactionStorage = (*Storage)(nil)
	_ storage.BudgetStorage      = (*Storage)(nil)
	_ storage.RecurringStorage   = (*Storage)(nil)
)
