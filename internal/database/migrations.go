package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations applies the full schema chain in order. Every statement is
// written to be rerunnable, so calling this against an already-migrated
// database is a no-op.
func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createSchemas,
		createSalonTables,
		createReadingTables,
		createCommunityTables,
		addSearchVectors,
		createSyllabusTables,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createSchemas = `
CREATE SCHEMA IF NOT EXISTS salons;
CREATE SCHEMA IF NOT EXISTS reading;
CREATE SCHEMA IF NOT EXISTS community;
`

const createSalonTables = `
CREATE TABLE IF NOT EXISTS salons.sessions (
  id SERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  date TIMESTAMP WITH TIME ZONE NOT NULL,
  format VARCHAR(50) DEFAULT 'deep_dive',
  facilitator TEXT,
  recording_url TEXT,
  notes TEXT DEFAULT '',
  organ_tags TEXT[] DEFAULT '{}',
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS salons.participants (
  id SERIAL PRIMARY KEY,
  session_id INT NOT NULL REFERENCES salons.sessions(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  role VARCHAR(50) DEFAULT 'participant',
  consent_given BOOLEAN DEFAULT false
);

CREATE TABLE IF NOT EXISTS salons.segments (
  id SERIAL PRIMARY KEY,
  session_id INT NOT NULL REFERENCES salons.sessions(id) ON DELETE CASCADE,
  speaker TEXT NOT NULL,
  text TEXT NOT NULL,
  start_seconds DOUBLE PRECISION NOT NULL,
  end_seconds DOUBLE PRECISION NOT NULL,
  confidence DOUBLE PRECISION DEFAULT 0.0
);

CREATE TABLE IF NOT EXISTS salons.taxonomy_nodes (
  id SERIAL PRIMARY KEY,
  slug VARCHAR(100) NOT NULL UNIQUE,
  label TEXT NOT NULL,
  parent_id INT REFERENCES salons.taxonomy_nodes(id),
  description TEXT DEFAULT '',
  organ_id INT
);

CREATE INDEX IF NOT EXISTS idx_participants_session_id ON salons.participants(session_id);
CREATE INDEX IF NOT EXISTS idx_segments_session_id ON salons.segments(session_id);
CREATE INDEX IF NOT EXISTS idx_taxonomy_nodes_parent_id ON salons.taxonomy_nodes(parent_id);
`

const createReadingTables = `
CREATE TABLE IF NOT EXISTS reading.curricula (
  id SERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  theme VARCHAR(100) DEFAULT 'general',
  organ_focus VARCHAR(50),
  duration_weeks INT NOT NULL,
  description TEXT DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS reading.sessions (
  id SERIAL PRIMARY KEY,
  curriculum_id INT NOT NULL REFERENCES reading.curricula(id) ON DELETE CASCADE,
  week INT NOT NULL,
  title TEXT NOT NULL,
  duration_minutes INT DEFAULT 90,
  completed BOOLEAN DEFAULT false,
  date_scheduled DATE
);

CREATE TABLE IF NOT EXISTS reading.entries (
  id SERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  author TEXT NOT NULL,
  source_type VARCHAR(50) DEFAULT 'book',
  url TEXT,
  pages VARCHAR(100),
  difficulty VARCHAR(20) DEFAULT 'intermediate',
  organ_tags TEXT[] DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS reading.session_entries (
  session_id INT NOT NULL REFERENCES reading.sessions(id) ON DELETE CASCADE,
  entry_id INT NOT NULL REFERENCES reading.entries(id) ON DELETE CASCADE,
  PRIMARY KEY (session_id, entry_id)
);

CREATE TABLE IF NOT EXISTS reading.discussion_questions (
  id SERIAL PRIMARY KEY,
  session_id INT NOT NULL REFERENCES reading.sessions(id) ON DELETE CASCADE,
  question_text TEXT NOT NULL,
  category VARCHAR(50) DEFAULT 'deep_dive'
);

CREATE TABLE IF NOT EXISTS reading.guides (
  id SERIAL PRIMARY KEY,
  session_id INT NOT NULL REFERENCES reading.sessions(id) ON DELETE CASCADE,
  opening_questions TEXT[] DEFAULT '{}',
  deep_dive_questions TEXT[] DEFAULT '{}',
  activities TEXT[] DEFAULT '{}',
  closing_reflection TEXT DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_reading_sessions_curriculum_id ON reading.sessions(curriculum_id);
CREATE INDEX IF NOT EXISTS idx_discussion_questions_session_id ON reading.discussion_questions(session_id);
CREATE INDEX IF NOT EXISTS idx_guides_session_id ON reading.guides(session_id);
`

const createCommunityTables = `
CREATE TABLE IF NOT EXISTS community.events (
  id SERIAL PRIMARY KEY,
  type VARCHAR(50) NOT NULL,
  title TEXT NOT NULL,
  date TIMESTAMP WITH TIME ZONE NOT NULL,
  description TEXT DEFAULT '',
  format VARCHAR(50) DEFAULT 'virtual',
  capacity INT,
  registration_url TEXT,
  status VARCHAR(30) DEFAULT 'planned'
);

CREATE TABLE IF NOT EXISTS community.contributors (
  id SERIAL PRIMARY KEY,
  github_handle VARCHAR(100) NOT NULL UNIQUE,
  name TEXT NOT NULL,
  organs_active TEXT[] DEFAULT '{}',
  first_contribution_date DATE DEFAULT CURRENT_DATE
);

CREATE TABLE IF NOT EXISTS community.contributions (
  id SERIAL PRIMARY KEY,
  contributor_id INT NOT NULL REFERENCES community.contributors(id) ON DELETE CASCADE,
  repo VARCHAR(200) NOT NULL,
  type VARCHAR(50) NOT NULL,
  url TEXT,
  date DATE DEFAULT CURRENT_DATE,
  description TEXT DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_contributions_contributor_id ON community.contributions(contributor_id);
`

// Full-text search: tsvector columns kept current by triggers, indexed
// with GIN. The UPDATE statements backfill rows that predate the column.
const addSearchVectors = `
ALTER TABLE salons.sessions ADD COLUMN IF NOT EXISTS search_vector tsvector;
UPDATE salons.sessions SET search_vector =
  to_tsvector('english', coalesce(title, '') || ' ' || coalesce(notes, ''))
  WHERE search_vector IS NULL;
CREATE INDEX IF NOT EXISTS idx_sessions_search_vector
  ON salons.sessions USING GIN (search_vector);
CREATE OR REPLACE FUNCTION salons.sessions_search_vector_update() RETURNS trigger AS $$
BEGIN
  NEW.search_vector :=
    to_tsvector('english', coalesce(NEW.title, '') || ' ' || coalesce(NEW.notes, ''));
  RETURN NEW;
END;
$$ LANGUAGE plpgsql;
DROP TRIGGER IF EXISTS trg_sessions_search_vector ON salons.sessions;
CREATE TRIGGER trg_sessions_search_vector
  BEFORE INSERT OR UPDATE ON salons.sessions
  FOR EACH ROW EXECUTE FUNCTION salons.sessions_search_vector_update();

ALTER TABLE salons.segments ADD COLUMN IF NOT EXISTS search_vector tsvector;
UPDATE salons.segments SET search_vector =
  to_tsvector('english', coalesce(text, ''))
  WHERE search_vector IS NULL;
CREATE INDEX IF NOT EXISTS idx_segments_search_vector
  ON salons.segments USING GIN (search_vector);
CREATE OR REPLACE FUNCTION salons.segments_search_vector_update() RETURNS trigger AS $$
BEGIN
  NEW.search_vector := to_tsvector('english', coalesce(NEW.text, ''));
  RETURN NEW;
END;
$$ LANGUAGE plpgsql;
DROP TRIGGER IF EXISTS trg_segments_search_vector ON salons.segments;
CREATE TRIGGER trg_segments_search_vector
  BEFORE INSERT OR UPDATE ON salons.segments
  FOR EACH ROW EXECUTE FUNCTION salons.segments_search_vector_update();

ALTER TABLE salons.taxonomy_nodes ADD COLUMN IF NOT EXISTS search_vector tsvector;
UPDATE salons.taxonomy_nodes SET search_vector =
  to_tsvector('english', coalesce(label, '') || ' ' || coalesce(description, ''))
  WHERE search_vector IS NULL;
CREATE INDEX IF NOT EXISTS idx_taxonomy_nodes_search_vector
  ON salons.taxonomy_nodes USING GIN (search_vector);
CREATE OR REPLACE FUNCTION salons.taxonomy_nodes_search_vector_update() RETURNS trigger AS $$
BEGIN
  NEW.search_vector :=
    to_tsvector('english', coalesce(NEW.label, '') || ' ' || coalesce(NEW.description, ''));
  RETURN NEW;
END;
$$ LANGUAGE plpgsql;
DROP TRIGGER IF EXISTS trg_taxonomy_nodes_search_vector ON salons.taxonomy_nodes;
CREATE TRIGGER trg_taxonomy_nodes_search_vector
  BEFORE INSERT OR UPDATE ON salons.taxonomy_nodes
  FOR EACH ROW EXECUTE FUNCTION salons.taxonomy_nodes_search_vector_update();

ALTER TABLE reading.entries ADD COLUMN IF NOT EXISTS search_vector tsvector;
UPDATE reading.entries SET search_vector =
  to_tsvector('english', coalesce(title, '') || ' by ' || coalesce(author, ''))
  WHERE search_vector IS NULL;
CREATE INDEX IF NOT EXISTS idx_entries_search_vector
  ON reading.entries USING GIN (search_vector);
CREATE OR REPLACE FUNCTION reading.entries_search_vector_update() RETURNS trigger AS $$
BEGIN
  NEW.search_vector :=
    to_tsvector('english', coalesce(NEW.title, '') || ' by ' || coalesce(NEW.author, ''));
  RETURN NEW;
END;
$$ LANGUAGE plpgsql;
DROP TRIGGER IF EXISTS trg_entries_search_vector ON reading.entries;
CREATE TRIGGER trg_entries_search_vector
  BEFORE INSERT OR UPDATE ON reading.entries
  FOR EACH ROW EXECUTE FUNCTION reading.entries_search_vector_update();
`

const createSyllabusTables = `
CREATE SCHEMA IF NOT EXISTS syllabus;

CREATE TABLE IF NOT EXISTS syllabus.learner_profiles (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  organs_of_interest TEXT[] DEFAULT '{}',
  level VARCHAR(20) DEFAULT 'beginner',
  completed_modules TEXT[] DEFAULT '{}',
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS syllabus.learning_paths (
  id SERIAL PRIMARY KEY,
  path_id VARCHAR(32) NOT NULL UNIQUE,
  title TEXT NOT NULL,
  learner_id INT NOT NULL REFERENCES syllabus.learner_profiles(id) ON DELETE CASCADE,
  total_hours DOUBLE PRECISION DEFAULT 0,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS syllabus.learning_modules (
  id SERIAL PRIMARY KEY,
  path_id INT NOT NULL REFERENCES syllabus.learning_paths(id) ON DELETE CASCADE,
  module_id VARCHAR(100) NOT NULL,
  title TEXT NOT NULL,
  organ VARCHAR(50) NOT NULL,
  difficulty VARCHAR(20) DEFAULT 'beginner',
  readings TEXT[] DEFAULT '{}',
  questions TEXT[] DEFAULT '{}',
  estimated_hours DOUBLE PRECISION DEFAULT 2.0,
  seq INT DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_learning_paths_learner_id ON syllabus.learning_paths(learner_id);
CREATE INDEX IF NOT EXISTS idx_learning_modules_path_id ON syllabus.learning_modules(path_id);
`
