package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const userColumns = "id, username, email, password_hash, role, created_at"

// UserRepository provides database access for user management.
type UserRepository struct {
	db      *sqlx.DB
	deleter *Deleter
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB, deleter *Deleter) *UserRepository {
	return &UserRepository{db: db, deleter: deleter}
}

// FindByUsername returns a user by login name.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE LOWER(username) = LOWER($1) LIMIT 1"
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1 LIMIT 1"
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// ExistsByUsername reports whether another user already holds the username.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	const query = "SELECT 1 FROM users WHERE LOWER(username) = LOWER($1) AND id <> $2 LIMIT 1"
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, username, excludeID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check username: %w", err)
	}
	return true, nil
}

// List returns users matching the filter along with total count.
func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	var cond conditions
	if filter.Role != "" {
		cond.add("role = $%d", filter.Role)
	}
	if filter.Search != "" {
		cond.add("(LOWER(username) LIKE $%[1]d OR LOWER(email) LIKE $%[1]d)", likePattern(filter.Search))
	}

	var users []models.User
	total, err := listAndCount(ctx, r.db, &users, userColumns, tableUsers, cond, "created_at DESC, id ASC", filter.Page, filter.PageSize, "users")
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Create inserts a new user and assigns its generated ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	stampCreated(&user.CreatedAt)
	const query = `INSERT INTO users (username, email, password_hash, role, created_at)
		VALUES (:username, :email, :password_hash, :role, :created_at) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, user)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return nil
}

// Update overwrites the mutable columns of an existing user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	const query = `UPDATE users SET username = :username, email = :email, password_hash = :password_hash, role = :role WHERE id = :id`
	return namedUpdate(ctx, r.db, query, user, "user")
}

// Delete removes a user, reporting whether it existed.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleter.Delete(ctx, tableUsers, id)
}
