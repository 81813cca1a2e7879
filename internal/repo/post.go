package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/baigashl/blog/internal/models"
)

// ErrPostNotFound is returned when a post id does not exist.
var ErrPostNotFound = errors.New("post not found")

// ==========================
// PostRepo
// ==========================
type PostRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{DB: db}
}

// ==========================
// Create Post
// ==========================
func (r *PostRepo) Create(ctx context.Context, title, description string, authorID int) (*models.Post, error) {
	query := `
		INSERT INTO posts (title, description, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, author_id
	`

	post := &models.Post{}

	err := r.DB.QueryRowContext(ctx, query, title, description, authorID).
		Scan(&post.ID, &post.Title, &post.Description, &post.AuthorID)

	if err != nil {
		return nil, err
	}

	return post, nil
}

// ==========================
// Get By ID
// ==========================
func (r *PostRepo) GetByID(ctx context.Context, id int) (*models.Post, error) {
	query := `
		SELECT p.id, p.title, p.description, p.author_id, u.email, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	post := &models.Post{}

	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.Title, &post.Description, &post.AuthorID, &post.AuthorEmail, &post.AuthorName)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// ==========================
// Update Post (title and description always rewritten together)
// ==========================
func (r *PostRepo) Update(ctx context.Context, id int, title, description string) (*models.Post, error) {
	query := `
		UPDATE posts
		SET title = $1, description = $2
		WHERE id = $3
		RETURNING id, title, description, author_id
	`

	post := &models.Post{}

	err := r.DB.QueryRowContext(ctx, query, title, description, id).
		Scan(&post.ID, &post.Title, &post.Description, &post.AuthorID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// ==========================
// Delete Post
// ==========================
func (r *PostRepo) Delete(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}

// ==========================
// List Posts (insertion order)
// ==========================
func (r *PostRepo) List(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT p.id, p.title, p.description, p.author_id, u.email, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.id
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ==========================
// List By Author
// ==========================
func (r *PostRepo) ListByAuthor(ctx context.Context, authorID int) ([]models.Post, error) {
	query := `
		SELECT p.id, p.title, p.description, p.author_id, u.email, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id = $1
		ORDER BY p.id
	`

	rows, err := r.DB.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.AuthorID, &p.AuthorEmail, &p.AuthorName); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
