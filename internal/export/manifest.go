// Package export generates data/schema-manifest.json: a static inventory
// of every model, its columns, and the seed data files. No database
// connection is needed; model metadata comes from the gorm schema parser
// and seed counts from the files on disk.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm/schema"

	"koinonia/internal/models"
)

const PackageVersion = "0.5.0"

// AllModels lists every model in declaration order; the manifest follows
// this ordering.
var AllModels = []any{
	&models.SalonSession{},
	&models.Participant{},
	&models.Segment{},
	&models.TaxonomyNode{},
	&models.Curriculum{},
	&models.ReadingSession{},
	&models.Entry{},
	&models.SessionEntry{},
	&models.DiscussionQuestion{},
	&models.Guide{},
	&models.Event{},
	&models.Contributor{},
	&models.Contribution{},
	&models.LearnerProfile{},
	&models.LearningPath{},
	&models.LearningModule{},
}

type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key"`
}

type ModelInfo struct {
	ClassName   string   `json:"class_name"`
	TableName   string   `json:"table_name"`
	Schema      string   `json:"schema"`
	ColumnCount int      `json:"column_count"`
	Columns     []Column `json:"columns"`
}

type SeedFileInfo struct {
	Entries int `json:"entries"`
}

type Manifest struct {
	GeneratedAt      string                  `json:"generated_at"`
	PackageVersion   string                  `json:"package_version"`
	ModelCount       int                     `json:"model_count"`
	Models           []string                `json:"models"`
	ModelDetails     []ModelInfo             `json:"model_details"`
	Schemas          []string                `json:"schemas"`
	SeedFiles        map[string]SeedFileInfo `json:"seed_files"`
	TotalSeedEntries int                     `json:"total_seed_entries"`
}

// modelInfo extracts table and column metadata from a model struct via
// the gorm schema parser.
func modelInfo(model any) (ModelInfo, error) {
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return ModelInfo{}, fmt.Errorf("failed to parse model schema: %w", err)
	}

	info := ModelInfo{ClassName: s.Name, TableName: s.Table}
	if parts := strings.SplitN(s.Table, ".", 2); len(parts) == 2 {
		info.Schema = parts[0]
		info.TableName = parts[1]
	}

	for _, f := range s.Fields {
		if f.DBName == "" {
			continue // not a database column
		}
		colType := f.TagSettings["TYPE"]
		if colType == "" {
			colType = string(f.DataType)
		}
		info.Columns = append(info.Columns, Column{
			Name:       f.DBName,
			Type:       colType,
			Nullable:   !f.NotNull && !f.PrimaryKey,
			PrimaryKey: f.PrimaryKey,
		})
	}
	info.ColumnCount = len(info.Columns)
	return info, nil
}

// countSeedEntries counts the top-level entries of a seed JSON document:
// the length of the document itself when it is an array, otherwise the
// length of the first array-valued key in document order.
func countSeedEntries(data []byte) int {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return 0
	}

	if trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return 0
		}
		return len(list)
	}
	if trimmed[0] != '{' {
		return 0
	}

	// Walk the object with a decoder so keys are seen in file order, not
	// map-iteration order.
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return 0
	}
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return 0
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return 0
		}
		value = bytes.TrimSpace(value)
		if len(value) > 0 && value[0] == '[' {
			var list []json.RawMessage
			if err := json.Unmarshal(value, &list); err != nil {
				return 0
			}
			return len(list)
		}
	}
	return 0
}

// SeedInventory scans a seed directory for JSON files and counts their
// entries. Unreadable or malformed files count as zero.
func SeedInventory(seedDir string) (map[string]SeedFileInfo, int) {
	files := map[string]SeedFileInfo{}
	total := 0

	paths, err := filepath.Glob(filepath.Join(seedDir, "*.json"))
	if err != nil {
		return files, 0
	}
	sort.Strings(paths)

	for _, path := range paths {
		count := 0
		if data, err := os.ReadFile(path); err == nil {
			count = countSeedEntries(data)
		}
		files[filepath.Base(path)] = SeedFileInfo{Entries: count}
		total += count
	}
	return files, total
}

// BuildManifest assembles the complete manifest from the model registry
// and the seed directory.
func BuildManifest(seedDir string) (*Manifest, error) {
	manifest := &Manifest{
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		PackageVersion: PackageVersion,
	}

	schemaSet := map[string]bool{}
	for _, model := range AllModels {
		info, err := modelInfo(model)
		if err != nil {
			return nil, err
		}
		manifest.Models = append(manifest.Models, info.ClassName)
		manifest.ModelDetails = append(manifest.ModelDetails, info)
		if info.Schema != "" {
			schemaSet[info.Schema] = true
		}
	}
	manifest.ModelCount = len(manifest.ModelDetails)

	for s := range schemaSet {
		manifest.Schemas = append(manifest.Schemas, s)
	}
	sort.Strings(manifest.Schemas)

	manifest.SeedFiles, manifest.TotalSeedEntries = SeedInventory(seedDir)
	return manifest, nil
}

// Write generates the manifest and writes it to outDir/schema-manifest.json,
// returning the output path.
func Write(outDir, seedDir string) (string, error) {
	manifest, err := BuildManifest(seedDir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(outDir, "schema-manifest.json")
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return outPath, nil
}
