package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "nurse-manager/internal/auth/repository"
	"nurse-manager/internal/model"
)

// CreateUser inserts a new account and returns it.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (username, password, full_name, role, unit, shift)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	var row userRow
	err := r.db.GetContext(ctx, &row, query,
		opt.Username, opt.PasswordHash, opt.FullName, string(opt.Role), nullString(opt.Unit), nullString(opt.Shift))
	if isUniqueViolation(err) {
		return model.User{}, repo.ErrDuplicate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetUserByID returns zero-value User when not found.
func (r *implRepository) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	return r.getUser(ctx, "GetUserByID", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetUserByUsername returns zero-value User when not found.
func (r *implRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getUser(ctx, "GetUserByUsername", `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *implRepository) getUser(ctx context.Context, method, query string, arg any) (model.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// CountUsers returns the number of accounts.
func (r *implRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountUsers"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}
