package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/shopstock/shopstock-go/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository handles user and profile persistence.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and its profile row in a single transaction, so a
// failed profile insert never leaves an orphaned user behind. The generated
// ID is set on the user struct.
func (r *UserRepository) Create(ctx context.Context, user *model.User, email string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO users (username, password_hash) VALUES (?, ?)`,
		user.Username, user.PasswordHash,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateUsername
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO profiles (user_id, email) VALUES (?, ?)`,
		id, email,
	); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user joined with its profile. Profile columns come
// back nil when the profile row is absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.UserProfile, error) {
	query := `SELECT u.id, u.username, p.email, p.profile_image, p.detail, u.created_at
		FROM users u LEFT JOIN profiles p ON p.user_id = u.id WHERE u.id = ?`

	up := &model.UserProfile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&up.ID, &up.Username, &up.Email, &up.ProfileImage, &up.Detail, &up.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return up, nil
}

// UpdateProfile overwrites the three profile columns with the given values.
// Nil pointers write NULL; callers own the full set of fields. Returns the
// joined row after the update.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, email, profileImage, detail *string) (*model.UserProfile, error) {
	query := `UPDATE profiles SET email = ?, profile_image = ?, detail = ? WHERE user_id = ?`

	if _, err := r.db.ExecContext(ctx, query, email, profileImage, detail, id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes a user row. The profile row goes with it via the schema's
// ON DELETE CASCADE constraint.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

// isDuplicateKeyError reports whether err is a MySQL duplicate entry error
// (code 1062).
func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
