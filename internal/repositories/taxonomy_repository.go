package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"koinonia/internal/models"
)

type TaxonomyRepository struct {
	db Querier
}

func NewTaxonomyRepository(db Querier) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

const taxonomyColumns = `id, slug, label, parent_id, description, organ_id`

func scanTaxonomyRows(rows pgx.Rows) ([]models.TaxonomyNode, error) {
	var nodes []models.TaxonomyNode
	for rows.Next() {
		var n models.TaxonomyNode
		if err := rows.Scan(&n.ID, &n.Slug, &n.Label, &n.ParentID, &n.Description, &n.OrganID); err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

// Roots returns the top-level taxonomy nodes (the organs).
func (r *TaxonomyRepository) Roots(ctx context.Context) ([]models.TaxonomyNode, error) {
	query := `
		SELECT ` + taxonomyColumns + `
		FROM salons.taxonomy_nodes WHERE parent_id IS NULL
		ORDER BY slug
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTaxonomyRows(rows)
}

// ChildrenOf returns the direct children of a taxonomy node.
func (r *TaxonomyRepository) ChildrenOf(ctx context.Context, parentID int) ([]models.TaxonomyNode, error) {
	query := `
		SELECT ` + taxonomyColumns + `
		FROM salons.taxonomy_nodes WHERE parent_id = $1
		ORDER BY slug
	`
	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTaxonomyRows(rows)
}

func (r *TaxonomyRepository) GetBySlug(ctx context.Context, slug string) (*models.TaxonomyNode, error) {
	query := `
		SELECT ` + taxonomyColumns + `
		FROM salons.taxonomy_nodes WHERE slug = $1
	`
	var n models.TaxonomyNode
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&n.ID, &n.Slug, &n.Label, &n.ParentID, &n.Description, &n.OrganID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// Upsert inserts a node or, when the slug already exists, refreshes its
// label, description, and parent. Returns the node id either way.
func (r *TaxonomyRepository) Upsert(ctx context.Context, node *models.TaxonomyNode) (int, error) {
	query := `
		INSERT INTO salons.taxonomy_nodes (slug, label, parent_id, description, organ_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE
		SET label = EXCLUDED.label, description = EXCLUDED.description, parent_id = EXCLUDED.parent_id
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		node.Slug, node.Label, node.ParentID, node.Description, node.OrganID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Tree returns all root nodes with their children attached.
func (r *TaxonomyRepository) Tree(ctx context.Context) ([]models.TaxonomyNode, error) {
	roots, err := r.Roots(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roots {
		children, err := r.ChildrenOf(ctx, roots[i].ID)
		if err != nil {
			return nil, err
		}
		roots[i].Children = children
	}
	return roots, nil
}

// Search runs a full-text query over node labels and descriptions.
func (r *TaxonomyRepository) Search(ctx context.Context, q string, limit int) ([]models.TaxonomyNode, error) {
	query := `
		SELECT ` + taxonomyColumns + `
		FROM salons.taxonomy_nodes
		WHERE search_vector @@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(search_vector, plainto_tsquery('english', $1)) DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTaxonomyRows(rows)
}
