package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"koinonia/internal/models"
)

type CommunityRepository struct {
	db Querier
}

func NewCommunityRepository(db Querier) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// GetEventByTitleDate looks an event up by its natural key.
func (r *CommunityRepository) GetEventByTitleDate(ctx context.Context, title string, date time.Time) (*models.Event, error) {
	query := `
		SELECT id, type, title, date, description, format, capacity, registration_url, status
		FROM community.events WHERE title = $1 AND date = $2
	`
	var e models.Event
	err := r.db.QueryRow(ctx, query, title, date).Scan(
		&e.ID, &e.Type, &e.Title, &e.Date, &e.Description, &e.Format,
		&e.Capacity, &e.RegistrationURL, &e.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *CommunityRepository) InsertEvent(ctx context.Context, e *models.Event) error {
	query := `
		INSERT INTO community.events (type, title, date, description, format, capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		e.Type, e.Title, e.Date, e.Description, e.Format, e.Capacity, e.Status,
	)
	return err
}

// GetContributorByHandle looks a contributor up by GitHub handle.
func (r *CommunityRepository) GetContributorByHandle(ctx context.Context, handle string) (*models.Contributor, error) {
	query := `
		SELECT id, github_handle, name, organs_active, first_contribution_date
		FROM community.contributors WHERE github_handle = $1
	`
	var c models.Contributor
	err := r.db.QueryRow(ctx, query, handle).Scan(
		&c.ID, &c.GithubHandle, &c.Name, &c.OrgansActive, &c.FirstContributionDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CommunityRepository) InsertContributor(ctx context.Context, c *models.Contributor) (int, error) {
	query := `
		INSERT INTO community.contributors (github_handle, name, organs_active, first_contribution_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		c.GithubHandle, c.Name, c.OrgansActive, c.FirstContributionDate,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// HasContribution reports whether a contribution already exists for the
// contributor+repo+date natural key.
func (r *CommunityRepository) HasContribution(ctx context.Context, contributorID int, repo string, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM community.contributions
			WHERE contributor_id = $1 AND repo = $2 AND date = $3
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, contributorID, repo, date).Scan(&exists)
	return exists, err
}

func (r *CommunityRepository) InsertContribution(ctx context.Context, c *models.Contribution) error {
	query := `
		INSERT INTO community.contributions (contributor_id, repo, type, url, date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		c.ContributorID, c.Repo, c.Type, c.URL, c.Date, c.Description,
	)
	return err
}
