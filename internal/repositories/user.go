package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-user-registration/internal/models"
	"go.uber.org/zap"
)

const insertUserQuery = `
	INSERT INTO users (name, email, password, aadhar, mobile, address)
	VALUES ($1, $2, $3, $4, $5, $6)
`

const listUsersQuery = `
	SELECT id, name, email, mobile, address, created_at
	FROM users
	ORDER BY created_at DESC, id
`

// UserWriteRepository stores new users.
type UserWriteRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewUserWriteRepository(db *sqlx.DB, log *zap.SugaredLogger) *UserWriteRepository {
	return &UserWriteRepository{db: db, log: log}
}

// Save inserts user as a single row through a prepared statement.
// Values are bound positionally; the row is either fully written or not at all.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserRecord) error {
	stmt, err := r.db.PreparexContext(ctx, insertUserQuery)
	if err != nil {
		r.log.Debugw("query", "query", oneLine(insertUserQuery), "error", err)
		return fmt.Errorf("prepare insert user: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx,
		user.Name, user.Email, user.Password, user.Aadhar, user.Mobile, user.Address,
	)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line, hash left out
	r.log.Debugw("query",
		"query", oneLine(insertUserQuery),
		"args", []any{user.Name, user.Email, "[REDACTED]", user.Aadhar, user.Mobile, user.Address},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// UserReadRepository reads registered users.
type UserReadRepository struct {
	db  *sqlx.DB
	log *zap.SugaredLogger
}

func NewUserReadRepository(db *sqlx.DB, log *zap.SugaredLogger) *UserReadRepository {
	return &UserReadRepository{db: db, log: log}
}

// List returns all registered users, newest first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, listUsersQuery)

	r.log.Debugw("query",
		"query", oneLine(listUsersQuery),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
