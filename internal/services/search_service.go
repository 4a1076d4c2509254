package services

import (
	"context"
	"fmt"

	"koinonia/internal/models"
	"koinonia/internal/repositories"
)

const defaultSearchLimit = 20

type SearchService struct {
	salonRepo    *repositories.SalonRepository
	taxonomyRepo *repositories.TaxonomyRepository
	entryRepo    *repositories.EntryRepository
}

func NewSearchService(
	salonRepo *repositories.SalonRepository,
	taxonomyRepo *repositories.TaxonomyRepository,
	entryRepo *repositories.EntryRepository,
) *SearchService {
	return &SearchService{
		salonRepo:    salonRepo,
		taxonomyRepo: taxonomyRepo,
		entryRepo:    entryRepo,
	}
}

// SearchResults aggregates full-text matches across the searchable tables.
type SearchResults struct {
	Query         string                `json:"query"`
	Sessions      []models.SalonSession `json:"sessions"`
	Segments      []models.Segment      `json:"segments"`
	TaxonomyNodes []models.TaxonomyNode `json:"taxonomy_nodes"`
	Entries       []models.Entry        `json:"entries"`
}

// Search runs the query against every search_vector column, rank-ordered
// per table.
func (s *SearchService) Search(ctx context.Context, q string) (*SearchResults, error) {
	results := &SearchResults{Query: q}

	sessions, err := s.salonRepo.SearchSessions(ctx, q, defaultSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("session search failed: %w", err)
	}
	results.Sessions = sessions

	segments, err := s.salonRepo.SearchSegments(ctx, q, defaultSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("segment search failed: %w", err)
	}
	results.Segments = segments

	nodes, err := s.taxonomyRepo.Search(ctx, q, defaultSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("taxonomy search failed: %w", err)
	}
	results.TaxonomyNodes = nodes

	entries, err := s.entryRepo.Search(ctx, q, defaultSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("entry search failed: %w", err)
	}
	results.Entries = entries

	return results, nil
}
