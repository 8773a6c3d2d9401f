package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const userColumns = `id, username, email, password_hash, role, created_at, updated_at`

// UserRepository implements repositories.UserRepository
type UserRepository struct {
	*BaseRepository
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, dialect Dialect, logger *logrus.Logger) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db, dialect, "users", logger),
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return repositories.ValidationError("user", user.ID.String(), err)
	}

	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.executeExec(ctx, "create", query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.DuplicateError("user", "username", user.Username)
		}
		return repositories.NewRepositoryError("create", "user", user.ID.String(), err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, "get_by_id", id.String(), `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "get_by_username", username, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

func (r *UserRepository) getOne(ctx context.Context, op, key, query string, arg any) (*models.User, error) {
	user, err := scanUser(r.executeQueryRow(ctx, op, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError("user", key)
		}
		return nil, repositories.NewRepositoryError(op, "user", key, err)
	}
	return user, nil
}

// Update updates an existing user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return repositories.ValidationError("user", user.ID.String(), err)
	}
	user.UpdateTimestamp()

	query := `
		UPDATE users
		SET username = ?, email = ?, password_hash = ?, role = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.executeExec(ctx, "update", query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.DuplicateError("user", "username", user.Username)
		}
		return repositories.NewRepositoryError("update", "user", user.ID.String(), err)
	}
	return r.checkRowsAffected(result, "user", "update", user.ID.String())
}

// Delete deletes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.executeExec(ctx, "delete", `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return repositories.NewRepositoryError("delete", "user", id.String(), err)
	}
	return r.checkRowsAffected(result, "user", "delete", id.String())
}

// List returns all users ordered by username
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.executeQuery(ctx, "list", `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "user", "", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "user", "", err)
	}
	return users, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
