package community

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrPostNotFound is returned for lookups and deletes of unknown posts.
var ErrPostNotFound = errors.New("post not found")

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePost(ctx context.Context, p *Post) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO posts (title, content, category, image_url, my_store_category, partner_store_category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, p.Title, p.Content, p.Category, p.ImageURL, p.MyStoreCategory, p.PartnerStoreCategory).Scan(&id)
	return id, err
}

func (r *Repository) ListPosts(ctx context.Context) ([]*Post, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, content, category, image_url, my_store_category,
		       partner_store_category, comment_count, created_at
		FROM posts
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Post
	for rows.Next() {
		p := &Post{}
		if err := scanPost(rows, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) GetPost(ctx context.Context, id int64) (*PostDetail, error) {
	p := &Post{}
	row := r.db.QueryRow(ctx, `
		SELECT id, title, content, category, image_url, my_store_category,
		       partner_store_category, comment_count, created_at
		FROM posts
		WHERE id = $1
	`, id)
	if err := scanPost(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, post_id, content, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY id ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detail := &PostDetail{Post: *p, Comments: []Comment{}}
	for rows.Next() {
		var cm Comment
		if err := rows.Scan(&cm.ID, &cm.PostID, &cm.Content, &cm.CreatedAt); err != nil {
			return nil, err
		}
		detail.Comments = append(detail.Comments, cm)
	}
	return detail, rows.Err()
}

func (r *Repository) DeletePost(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}
	return nil
}

// AddComment inserts the comment and bumps the post's counter in one
// transaction.
func (r *Repository) AddComment(ctx context.Context, postID int64, content string) (*Comment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE posts SET comment_count = comment_count + 1 WHERE id = $1
	`, postID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrPostNotFound
	}

	cm := &Comment{PostID: postID, Content: content}
	err = tx.QueryRow(ctx, `
		INSERT INTO comments (post_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, postID, content).Scan(&cm.ID, &cm.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return cm, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner, p *Post) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Category,
		&p.ImageURL,
		&p.MyStoreCategory,
		&p.PartnerStoreCategory,
		&p.CommentCount,
		&p.CreatedAt,
	)
}
