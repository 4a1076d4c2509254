package services

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"koinonia/internal/models"
	"koinonia/internal/organs"
	"koinonia/internal/repositories"
)

type SyllabusService struct {
	taxonomyRepo *repositories.TaxonomyRepository
	entryRepo    *repositories.EntryRepository
	syllabusRepo *repositories.SyllabusRepository
}

func NewSyllabusService(
	taxonomyRepo *repositories.TaxonomyRepository,
	entryRepo *repositories.EntryRepository,
	syllabusRepo *repositories.SyllabusRepository,
) *SyllabusService {
	return &SyllabusService{
		taxonomyRepo: taxonomyRepo,
		entryRepo:    entryRepo,
		syllabusRepo: syllabusRepo,
	}
}

type GeneratePathRequest struct {
	Organs []string `json:"organs" binding:"required,min=1"`
	Level  string   `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	Name   string   `json:"name"`
}

type GeneratedPath struct {
	PathID     string                  `json:"path_id"`
	Title      string                  `json:"title"`
	Organs     []string                `json:"organs"`
	Level      string                  `json:"level"`
	TotalHours float64                 `json:"total_hours"`
	Modules    []models.LearningModule `json:"modules"`
}

// allowedDifficulties returns the difficulty window for a requested level:
// beginners also see intermediate material, intermediates also see
// advanced, advanced learners see only advanced.
func allowedDifficulties(level string) map[string]bool {
	switch level {
	case "beginner":
		return map[string]bool{"beginner": true, "intermediate": true}
	case "intermediate":
		return map[string]bool{"intermediate": true, "advanced": true}
	default:
		return map[string]bool{"advanced": true}
	}
}

// entryMatchesOrgan reports whether any of the entry's organ tags belongs
// to the organ identified by slug. A tag matches when it equals the slug
// or shares the slug's roman-numeral prefix (e.g. "vi-" tags belong to
// "vi-koinonia").
func entryMatchesOrgan(entry models.Entry, organSlug string) bool {
	prefix := strings.SplitN(organSlug, "-", 2)[0] + "-"
	for _, tag := range entry.OrganTags {
		if tag == organSlug || strings.HasPrefix(tag, prefix) {
			return true
		}
	}
	return false
}

// BuildModules derives learning modules from taxonomy roots (children
// attached) and the reading catalog. One module is produced per child
// node of each requested organ; unknown organ codes are skipped.
func BuildModules(roots []models.TaxonomyNode, entries []models.Entry, organCodes []string, level string) []models.LearningModule {
	bySlug := make(map[string]*models.TaxonomyNode, len(roots))
	for i := range roots {
		bySlug[roots[i].Slug] = &roots[i]
	}

	allowed := allowedDifficulties(level)
	hours := 2.0
	if level == "advanced" {
		hours = 3.0
	}
	levelCode := level
	if len(levelCode) > 3 {
		levelCode = levelCode[:3]
	}

	var modules []models.LearningModule
	for _, code := range organCodes {
		organSlug := organs.Slug(code)
		root, ok := bySlug[organSlug]
		if !ok {
			continue
		}

		var readings []string
		for _, e := range entries {
			if entryMatchesOrgan(e, organSlug) && allowed[e.Difficulty] {
				readings = append(readings, e.Title)
			}
		}

		for _, child := range root.Children {
			childReadings := readings
			if len(childReadings) > 3 {
				childReadings = childReadings[:3]
			}
			if len(childReadings) == 0 {
				childReadings = []string{fmt.Sprintf("See %s documentation", root.Label)}
			}

			modules = append(modules, models.LearningModule{
				ModuleID:   fmt.Sprintf("%s-%s", child.Slug, levelCode),
				Title:      child.Label,
				Organ:      organSlug,
				Difficulty: level,
				Readings:   childReadings,
				Questions: []string{
					fmt.Sprintf("What is the core idea behind %s?", child.Label),
					fmt.Sprintf("How does %s connect to %s?", child.Label, root.Label),
					fmt.Sprintf("What would you build or explore using %s?", child.Label),
				},
				EstimatedHours: hours,
			})
		}
	}

	sort.SliceStable(modules, func(i, j int) bool {
		return organs.Rank(modules[i].Difficulty) < organs.Rank(modules[j].Difficulty)
	})
	return modules
}

// NewPathID returns the short external path identifier: the first eight
// hex characters of a fresh UUID.
func NewPathID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:8]
}

// GenerateLearningPath builds a personalized learning path from the
// taxonomy and reading catalog and persists the learner profile, path,
// and modules atomically.
func (s *SyllabusService) GenerateLearningPath(ctx context.Context, req GeneratePathRequest) (*GeneratedPath, error) {
	roots, err := s.taxonomyRepo.Tree(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}

	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reading entries: %w", err)
	}

	modules := BuildModules(roots, entries, req.Organs, req.Level)

	totalHours := 0.0
	for i := range modules {
		modules[i].Seq = i
		totalHours += modules[i].EstimatedHours
	}

	name := req.Name
	if name == "" {
		name = "anonymous"
	}

	learner := &models.LearnerProfile{
		Name:             name,
		OrgansOfInterest: req.Organs,
		Level:            req.Level,
	}
	path := &models.LearningPath{
		PathID:     NewPathID(),
		Title:      fmt.Sprintf("Learning Path: %s", strings.Join(req.Organs, ", ")),
		TotalHours: totalHours,
	}

	if err := s.syllabusRepo.CreatePath(ctx, learner, path, modules); err != nil {
		return nil, fmt.Errorf("failed to persist learning path: %w", err)
	}

	return &GeneratedPath{
		PathID:     path.PathID,
		Title:      path.Title,
		Organs:     req.Organs,
		Level:      req.Level,
		TotalHours: totalHours,
		Modules:    modules,
	}, nil
}

// GetPath returns a stored path with its modules, or nil when the
// path_id is unknown.
func (s *SyllabusService) GetPath(ctx context.Context, pathID string) (*models.LearningPath, error) {
	return s.syllabusRepo.GetPath(ctx, pathID)
}

// ListPaths returns all stored paths, newest first.
func (s *SyllabusService) ListPaths(ctx context.Context) ([]models.LearningPath, error) {
	return s.syllabusRepo.ListPaths(ctx)
}
