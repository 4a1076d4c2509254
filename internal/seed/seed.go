package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"koinonia/internal/models"
	"koinonia/internal/repositories"
)

// Loader seeds the database from the JSON files in a seed directory.
// Every step keys on a natural key, so rerunning against an already
// seeded database inserts nothing. LoadAll runs all steps inside one
// transaction; a failure anywhere rolls the whole run back.
type Loader struct {
	pool     *pgxpool.Pool
	validate *validator.Validate
}

func NewLoader(pool *pgxpool.Pool) *Loader {
	return &Loader{
		pool:     pool,
		validate: validator.New(),
	}
}

// steps binds the repositories to one querier: the shared transaction
// during LoadAll, or the pool when a step runs on its own.
type steps struct {
	taxonomyRepo   *repositories.TaxonomyRepository
	salonRepo      *repositories.SalonRepository
	entryRepo      *repositories.EntryRepository
	curriculumRepo *repositories.CurriculumRepository
	communityRepo  *repositories.CommunityRepository
	validate       *validator.Validate
}

func newSteps(db repositories.Querier, validate *validator.Validate) *steps {
	return &steps{
		taxonomyRepo:   repositories.NewTaxonomyRepository(db),
		salonRepo:      repositories.NewSalonRepository(db),
		entryRepo:      repositories.NewEntryRepository(db),
		curriculumRepo: repositories.NewCurriculumRepository(db),
		communityRepo:  repositories.NewCommunityRepository(db),
		validate:       validate,
	}
}

func loadFile(dir, name string, out any, validate *validator.Validate) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("invalid seed file %s: %w", name, err)
	}
	return nil
}

// LoadAll seeds every table from dir inside a single transaction and
// logs per-step counts. Nothing is committed if any step fails.
func (l *Loader) LoadAll(ctx context.Context, dir string) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	s := newSteps(tx, l.validate)

	log.Println("Loading taxonomy...")
	taxCount, err := s.seedTaxonomy(ctx, dir)
	if err != nil {
		return fmt.Errorf("taxonomy seeding failed: %w", err)
	}
	log.Printf("  -> %d taxonomy nodes", taxCount)

	log.Println("Loading salon sessions...")
	sessionCount, err := s.seedSalonSessions(ctx, dir)
	if err != nil {
		return fmt.Errorf("salon seeding failed: %w", err)
	}
	log.Printf("  -> %d session records", sessionCount)

	log.Println("Loading reading entries...")
	entryMap, err := s.seedEntries(ctx, dir)
	if err != nil {
		return fmt.Errorf("entry seeding failed: %w", err)
	}
	log.Printf("  -> %d reading entries", len(entryMap))

	log.Println("Loading curricula...")
	currCount, err := s.seedCurricula(ctx, dir, entryMap)
	if err != nil {
		return fmt.Errorf("curricula seeding failed: %w", err)
	}
	log.Printf("  -> %d curriculum records", currCount)

	log.Println("Loading community data...")
	communityCount, err := s.seedCommunity(ctx, dir)
	if err != nil {
		return fmt.Errorf("community seeding failed: %w", err)
	}
	log.Printf("  -> %d community records", communityCount)

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	total := taxCount + sessionCount + len(entryMap) + currCount + communityCount
	log.Printf("Seed complete: %d total records processed.", total)
	return nil
}

// SeedTaxonomy upserts taxonomy roots and their children on slug.
func (l *Loader) SeedTaxonomy(ctx context.Context, dir string) (int, error) {
	return newSteps(l.pool, l.validate).seedTaxonomy(ctx, dir)
}

// SeedSalonSessions inserts sample salon sessions with participants and
// segments, skipping sessions that already exist by title+date.
func (l *Loader) SeedSalonSessions(ctx context.Context, dir string) (int, error) {
	return newSteps(l.pool, l.validate).seedSalonSessions(ctx, dir)
}

// SeedEntries inserts reading entries and returns the key->id map used by
// curricula to link readings. Existing entries (title+author) are reused.
func (l *Loader) SeedEntries(ctx context.Context, dir string) (map[string]int, error) {
	return newSteps(l.pool, l.validate).seedEntries(ctx, dir)
}

// SeedCurricula inserts curricula with their weekly sessions, reading
// links, discussion questions, and guides.
func (l *Loader) SeedCurricula(ctx context.Context, dir string, entryKeyMap map[string]int) (int, error) {
	return newSteps(l.pool, l.validate).seedCurricula(ctx, dir, entryKeyMap)
}

// SeedCommunity inserts events, contributors, and contributions.
func (l *Loader) SeedCommunity(ctx context.Context, dir string) (int, error) {
	return newSteps(l.pool, l.validate).seedCommunity(ctx, dir)
}

func (s *steps) seedTaxonomy(ctx context.Context, dir string) (int, error) {
	var file TaxonomyFile
	if err := loadFile(dir, "taxonomy.json", &file, s.validate); err != nil {
		return 0, err
	}

	count := 0
	for _, root := range file.Nodes {
		rootID, err := s.taxonomyRepo.Upsert(ctx, &models.TaxonomyNode{
			Slug:        root.Slug,
			Label:       root.Label,
			Description: root.Description,
			OrganID:     root.OrganID,
		})
		if err != nil {
			return count, fmt.Errorf("failed to upsert node %s: %w", root.Slug, err)
		}
		count++

		for _, child := range root.Children {
			parentID := rootID
			if _, err := s.taxonomyRepo.Upsert(ctx, &models.TaxonomyNode{
				Slug:        child.Slug,
				Label:       child.Label,
				ParentID:    &parentID,
				Description: child.Description,
				OrganID:     root.OrganID,
			}); err != nil {
				return count, fmt.Errorf("failed to upsert node %s: %w", child.Slug, err)
			}
			count++
		}
	}
	return count, nil
}

func (s *steps) seedSalonSessions(ctx context.Context, dir string) (int, error) {
	var file SessionsFile
	if err := loadFile(dir, "sample_sessions.json", &file, s.validate); err != nil {
		return 0, err
	}

	count := 0
	for _, sess := range file.Sessions {
		date, err := parseDate(sess.Date)
		if err != nil {
			return count, fmt.Errorf("session %q: %w", sess.Title, err)
		}

		existing, err := s.salonRepo.GetByTitleDate(ctx, sess.Title, date)
		if err != nil {
			return count, err
		}
		if existing != nil {
			count++
			continue
		}

		format := sess.Format
		if format == "" {
			format = "deep_dive"
		}
		tags := sess.OrganTags
		if tags == nil {
			tags = []string{}
		}
		sessionID, err := s.salonRepo.Insert(ctx, &models.SalonSession{
			Title:       sess.Title,
			Date:        date,
			Format:      format,
			Facilitator: sess.Facilitator,
			Notes:       sess.Notes,
			OrganTags:   tags,
		})
		if err != nil {
			return count, fmt.Errorf("failed to insert session %q: %w", sess.Title, err)
		}
		count++

		for _, p := range sess.Participants {
			role := p.Role
			if role == "" {
				role = "participant"
			}
			if err := s.salonRepo.InsertParticipant(ctx, &models.Participant{
				SessionID:    sessionID,
				Name:         p.Name,
				Role:         role,
				ConsentGiven: p.ConsentGiven,
			}); err != nil {
				return count, err
			}
			count++
		}

		for _, seg := range sess.Segments {
			if err := s.salonRepo.InsertSegment(ctx, &models.Segment{
				SessionID:    sessionID,
				Speaker:      seg.Speaker,
				Text:         seg.Text,
				StartSeconds: seg.StartSeconds,
				EndSeconds:   seg.EndSeconds,
				Confidence:   seg.Confidence,
			}); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func (s *steps) seedEntries(ctx context.Context, dir string) (map[string]int, error) {
	var file ReadingListFile
	if err := loadFile(dir, "reading_lists.json", &file, s.validate); err != nil {
		return nil, err
	}

	keyMap := make(map[string]int, len(file.Entries))
	for _, e := range file.Entries {
		existing, err := s.entryRepo.GetByTitleAuthor(ctx, e.Title, e.Author)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			keyMap[e.Key] = existing.ID
			continue
		}

		sourceType := e.SourceType
		if sourceType == "" {
			sourceType = "book"
		}
		difficulty := e.Difficulty
		if difficulty == "" {
			difficulty = "intermediate"
		}
		tags := e.OrganTags
		if tags == nil {
			tags = []string{}
		}
		id, err := s.entryRepo.Insert(ctx, &models.Entry{
			Title:      e.Title,
			Author:     e.Author,
			SourceType: sourceType,
			URL:        e.URL,
			Pages:      e.Pages,
			Difficulty: difficulty,
			OrganTags:  tags,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to insert entry %q: %w", e.Title, err)
		}
		keyMap[e.Key] = id
	}
	return keyMap, nil
}

func (s *steps) seedCurricula(ctx context.Context, dir string, entryKeyMap map[string]int) (int, error) {
	var file CurriculaFile
	if err := loadFile(dir, "curricula.json", &file, s.validate); err != nil {
		return 0, err
	}

	count := 0
	for _, c := range file.Curricula {
		existing, err := s.curriculumRepo.GetByTitle(ctx, c.Title)
		if err != nil {
			return count, err
		}
		if existing != nil {
			count++
			continue
		}

		theme := c.Theme
		if theme == "" {
			theme = "general"
		}
		curriculumID, err := s.curriculumRepo.Insert(ctx, &models.Curriculum{
			Title:         c.Title,
			Theme:         theme,
			OrganFocus:    c.OrganFocus,
			DurationWeeks: c.DurationWeeks,
			Description:   c.Description,
		})
		if err != nil {
			return count, fmt.Errorf("failed to insert curriculum %q: %w", c.Title, err)
		}
		count++

		for _, sess := range c.Sessions {
			sessionID, err := s.curriculumRepo.InsertSession(ctx, &models.ReadingSession{
				CurriculumID: curriculumID,
				Week:         sess.Week,
				Title:        sess.Title,
			})
			if err != nil {
				return count, err
			}
			count++

			for _, readingKey := range sess.Readings {
				entryID, ok := entryKeyMap[readingKey]
				if !ok {
					continue
				}
				if err := s.curriculumRepo.LinkEntry(ctx, sessionID, entryID); err != nil {
					return count, err
				}
			}

			for _, q := range sess.Questions {
				if err := s.curriculumRepo.InsertQuestion(ctx, &models.DiscussionQuestion{
					SessionID:    sessionID,
					QuestionText: q,
					Category:     "deep_dive",
				}); err != nil {
					return count, err
				}
				count++
			}

			if len(sess.Activities) > 0 {
				opening, deepDive := splitQuestions(sess.Questions)
				if err := s.curriculumRepo.InsertGuide(ctx, &models.Guide{
					SessionID:         sessionID,
					OpeningQuestions:  opening,
					DeepDiveQuestions: deepDive,
					Activities:        sess.Activities,
					ClosingReflection: "",
				}); err != nil {
					return count, err
				}
				count++
			}
		}
	}
	return count, nil
}

// splitQuestions puts the first two questions in the guide's opening
// section and the rest in deep-dive.
func splitQuestions(questions []string) (opening, deepDive []string) {
	opening = []string{}
	deepDive = []string{}
	for i, q := range questions {
		if i < 2 {
			opening = append(opening, q)
		} else {
			deepDive = append(deepDive, q)
		}
	}
	return opening, deepDive
}

func (s *steps) seedCommunity(ctx context.Context, dir string) (int, error) {
	var file CommunityFile
	if err := loadFile(dir, "community.json", &file, s.validate); err != nil {
		return 0, err
	}

	count := 0
	for _, e := range file.Events {
		date, err := parseDate(e.Date)
		if err != nil {
			return count, fmt.Errorf("event %q: %w", e.Title, err)
		}

		existing, err := s.communityRepo.GetEventByTitleDate(ctx, e.Title, date)
		if err != nil {
			return count, err
		}
		if existing != nil {
			count++
			continue
		}

		format := e.Format
		if format == "" {
			format = "virtual"
		}
		status := e.Status
		if status == "" {
			status = "planned"
		}
		if err := s.communityRepo.InsertEvent(ctx, &models.Event{
			Type:        e.Type,
			Title:       e.Title,
			Date:        date,
			Description: e.Description,
			Format:      format,
			Capacity:    e.Capacity,
			Status:      status,
		}); err != nil {
			return count, fmt.Errorf("failed to insert event %q: %w", e.Title, err)
		}
		count++
	}

	for _, c := range file.Contributors {
		existing, err := s.communityRepo.GetContributorByHandle(ctx, c.GithubHandle)
		if err != nil {
			return count, err
		}

		var contributorID int
		if existing != nil {
			contributorID = existing.ID
		} else {
			firstDate := time.Now()
			if c.FirstContributionDate != "" {
				firstDate, err = parseDate(c.FirstContributionDate)
				if err != nil {
					return count, fmt.Errorf("contributor %q: %w", c.GithubHandle, err)
				}
			}
			organsActive := c.OrgansActive
			if organsActive == nil {
				organsActive = []string{}
			}
			contributorID, err = s.communityRepo.InsertContributor(ctx, &models.Contributor{
				GithubHandle:          c.GithubHandle,
				Name:                  c.Name,
				OrgansActive:          organsActive,
				FirstContributionDate: firstDate,
			})
			if err != nil {
				return count, fmt.Errorf("failed to insert contributor %q: %w", c.GithubHandle, err)
			}
		}
		count++

		for _, contrib := range c.Contributions {
			date, err := parseDate(contrib.Date)
			if err != nil {
				return count, fmt.Errorf("contribution to %q: %w", contrib.Repo, err)
			}

			exists, err := s.communityRepo.HasContribution(ctx, contributorID, contrib.Repo, date)
			if err != nil {
				return count, err
			}
			if exists {
				count++
				continue
			}

			if err := s.communityRepo.InsertContribution(ctx, &models.Contribution{
				ContributorID: contributorID,
				Repo:          contrib.Repo,
				Type:          contrib.Type,
				URL:           contrib.URL,
				Date:          date,
				Description:   contrib.Description,
			}); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
