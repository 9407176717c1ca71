package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openlms/lms/internal/app/models"
	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/internal/pkg/dberrors"
	"github.com/openlms/lms/internal/pkg/helpers"
)

var userSortColumns = map[string]string{
	"UserID":    "user_id",
	"LastName":  "last_name",
	"FirstName": "first_name",
	"Email":     "email",
	"Role":      "role",
	"Age":       "age",
}

// UserRepository handles database operations for users and their
// login accounts.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row, extra ...interface{}) (*models.User, error) {
	var u models.User
	var phone, address sql.NullString
	var age sql.NullInt64
	var dob sql.NullTime

	targets := []interface{}{
		&u.UserID, &u.LastName, &u.FirstName, &u.Email, &u.Role,
		&phone, &address, &age, &dob,
	}
	targets = append(targets, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	u.Phone = helpers.StringOrNil(phone)
	u.Address = helpers.StringOrNil(address)
	u.Age = helpers.IntOrNil(age)
	if dob.Valid {
		d := dob.Time
		u.DoB = &d
	}
	return &u, nil
}

// List retrieves a page of users matching the search term.
func (r *UserRepository) List(ctx context.Context, p ListParams) ([]models.User, int64, error) {
	builder := squirrel.Select(
		"user_id", "last_name", "first_name", "email", "role",
		"phone", "address", "age", "dob",
		"COUNT(*) OVER() AS total_count",
	).
		From("users").
		PlaceholderFormat(squirrel.Dollar)

	builder, err := applyListParams(builder, p, userSortColumns, "last_name", "first_name", "email")
	if err != nil {
		return nil, 0, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var users []models.User
	var total int64
	for rows.Next() {
		u, err := scanUser(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT user_id, last_name, first_name, email, role, phone, address, age, dob
		FROM users
		WHERE user_id = $1
	`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return u, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (user_id, last_name, first_name, email, role, phone, address, age, dob)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		u.UserID, u.LastName, u.FirstName, u.Email, u.Role,
		u.Phone, u.Address, u.Age, u.DoB)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			if dberrors.ConstraintName(err) == "users_email_key" {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.NewConflictError("user with this ID already exists")
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// Update writes only the supplied columns.
func (r *UserRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := squirrel.Update("users").
		SetMap(fields).
		Where(squirrel.Eq{"user_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConstraintError(
				fmt.Sprintf("cannot delete user %s: related records still reference it", id))
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// GetAccountByEmail retrieves login credentials by email. The role
// travels with the profile row, so it is joined in here.
func (r *UserRepository) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT a.account_id, a.user_id, a.email, a.password_hash, u.role
		FROM user_accounts a
		JOIN users u ON a.user_id = u.user_id
		WHERE a.email = $1
	`

	var account models.Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.AccountID, &account.UserID, &account.Email,
		&account.PasswordHash, &account.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	return &account, nil
}

// CreateAccount stores login credentials for an existing user and
// returns the generated account ID.
func (r *UserRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO user_accounts (user_id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING account_id
	`

	err := r.db.QueryRow(ctx, query,
		account.UserID, account.Email, account.PasswordHash, time.Now()).
		Scan(&account.AccountID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("account must reference an existing user")
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	return nil
}
