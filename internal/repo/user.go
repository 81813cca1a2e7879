package repo

import (
	"context"
	"database/sql"

	"github.com/baigashl/blog/internal/models"
)

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// ==========================
// Create User
// ==========================
func (r *UserRepo) Create(ctx context.Context, email, name, secondName, passwordHash string, age int) (*models.User, error) {
	query := `
		INSERT INTO users (email, name, second_name, password_hash, age)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, name, second_name, age
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, email, name, secondName, passwordHash, age).
		Scan(&user.ID, &user.Email, &user.Name, &user.SecondName, &user.Age)

	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// Get By ID
// ==========================
func (r *UserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT id, email, name, second_name, password_hash, age
		FROM users
		WHERE id = $1
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.Name, &user.SecondName, &user.PasswordHash, &user.Age)

	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// Get By Email
// ==========================
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, name, second_name, password_hash, age
		FROM users
		WHERE email = $1
	`

	user := &models.User{}

	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.Name, &user.SecondName, &user.PasswordHash, &user.Age)

	if err != nil {
		return nil, err
	}

	return user, nil
}

// ==========================
// List Users
// ==========================
func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, email, name, second_name, age FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.SecondName, &u.Age); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
