package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/agency-pro/internal/domain/authz"
	"github.com/tu-usuario/agency-pro/internal/domain/entity"
	"github.com/tu-usuario/agency-pro/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// CampaignRepo implementación del puerto CampaignRepository sobre PostgreSQL.
type CampaignRepo struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository construye el adaptador de persistencia para campañas.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

// Create persiste una nueva campaña.
func (r *CampaignRepo) Create(c *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (id, name, client, manager_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID.String(), c.Name, c.Client, c.ManagerID.String(), c.UserID.String(),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID obtiene una campaña por ID.
func (r *CampaignRepo) GetByID(id entity.ID) (*entity.Campaign, error) {
	query := `
		SELECT id, name, client, manager_id, user_id, created_at, updated_at
		FROM campaigns WHERE id = $1`
	var c entity.Campaign
	err := r.pool.QueryRow(context.Background(), query, id.String()).Scan(
		&c.ID, &c.Name, &c.Client, &c.ManagerID, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign by id: %w", err)
	}
	return &c, nil
}

// ListScoped lista campañas según el alcance de la política, con el manager y
// el cliente revisor unidos (los listados siempre los muestran juntos).
func (r *CampaignRepo) ListScoped(scope authz.Scope) ([]*repository.CampaignSummary, error) {
	query := `
		SELECT c.id, c.name, c.client, c.manager_id, c.user_id, c.created_at, c.updated_at,
		       m.name, m.email, u.name, u.email
		FROM campaigns c
		JOIN users m ON m.id = c.manager_id
		JOIN users u ON u.id = c.user_id`
	var args []any
	switch {
	case scope.All:
		// sin filtro
	case !scope.ManagerID.IsZero():
		query += ` WHERE c.manager_id = $1`
		args = append(args, scope.ManagerID.String())
	case !scope.ClientID.IsZero():
		query += ` WHERE c.user_id = $1`
		args = append(args, scope.ClientID.String())
	default:
		// Alcance vacío: no hay filas visibles. La política nunca debería
		// producirlo para un rol permitido, pero preferimos lista vacía a fuga.
		return nil, nil
	}
	query += ` ORDER BY c.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()
	var list []*repository.CampaignSummary
	for rows.Next() {
		var s repository.CampaignSummary
		if err := rows.Scan(
			&s.Campaign.ID, &s.Campaign.Name, &s.Campaign.Client,
			&s.Campaign.ManagerID, &s.Campaign.UserID,
			&s.Campaign.CreatedAt, &s.Campaign.UpdatedAt,
			&s.ManagerName, &s.ManagerEmail, &s.ClientName, &s.ClientEmail,
		); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
