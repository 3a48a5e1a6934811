package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
	"github.com/tu-usuario/agency-pro/internal/domain/repository"
)

var _ repository.PostRepository = (*PostRepo)(nil)

// PostRepo implementación del puerto PostRepository sobre PostgreSQL.
type PostRepo struct {
	pool *pgxpool.Pool
}

// NewPostRepository construye el adaptador de persistencia para posts.
func NewPostRepository(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

const postColumns = `id, campaign_id, title, outline, topic_status, outline_status, reject_reason, published_url, created_at, updated_at`

// Create persiste un nuevo post.
func (r *PostRepo) Create(p *entity.Post) error {
	query := `
		INSERT INTO posts (id, campaign_id, title, outline, topic_status, outline_status, reject_reason, published_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID.String(), p.CampaignID.String(), p.Title, p.Outline,
		string(p.TopicStatus), outlineStatusValue(p.OutlineStatus),
		p.RejectReason, p.PublishedURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID obtiene un post por ID.
func (r *PostRepo) GetByID(id entity.ID) (*entity.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	p, err := scanPost(r.pool.QueryRow(context.Background(), query, id.String()))
	if err != nil {
		return nil, fmt.Errorf("get post by id: %w", err)
	}
	return p, nil
}

// Update sobrescribe el post completo. Última escritura gana: el modelo de
// concurrencia aceptado no usa columna de versión.
func (r *PostRepo) Update(p *entity.Post) error {
	query := `
		UPDATE posts SET title = $2, outline = $3, topic_status = $4, outline_status = $5,
			reject_reason = $6, published_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID.String(), p.Title, p.Outline, string(p.TopicStatus),
		outlineStatusValue(p.OutlineStatus), p.RejectReason, p.PublishedURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// ListByCampaign lista los posts de una campaña en orden de creación.
func (r *PostRepo) ListByCampaign(campaignID entity.ID) ([]*entity.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE campaign_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query, campaignID.String())
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un post por ID.
func (r *PostRepo) Delete(id entity.ID) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM posts WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	var p entity.Post
	var topic string
	var outlineStatus *string
	err := row.Scan(
		&p.ID, &p.CampaignID, &p.Title, &p.Outline, &topic, &outlineStatus,
		&p.RejectReason, &p.PublishedURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.TopicStatus = entity.TopicStatus(topic)
	if outlineStatus != nil {
		s := entity.OutlineStatus(*outlineStatus)
		p.OutlineStatus = &s
	}
	return &p, nil
}

func outlineStatusValue(s *entity.OutlineStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
