package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"stratplan/internal/shared/logger"
)

var migrationNameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator writes new goose migration files, one per supported dialect,
// into the source tree. They are embedded on the next build.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator creates a generator rooted at the scripts folder that holds
// the per-dialect subfolders.
func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration creates <timestamp>_<name>.sql for every dialect and
// returns the written paths.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	if !migrationNameRegex.MatchString(name) {
		return nil, fmt.Errorf("migration name must be lower_snake_case, got %q", name)
	}

	version := g.now().UTC().Format("20060102150405")
	fileName := fmt.Sprintf("%s_%s.sql", version, name)

	var written []string
	for _, d := range []string{"mysql", "sqlite"} {
		dir := filepath.Join(g.scriptsPath, d)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create scripts directory: %w", err)
		}
		path := filepath.Join(dir, fileName)
		if err := os.WriteFile(path, []byte(g.template(name, d)), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write migration %s: %w", path, err)
		}
		written = append(written, path)
	}

	g.logger.Infow("migration files created successfully", "files", written)
	return written, nil
}

func (g *Generator) template(name, dialect string) string {
	return fmt.Sprintf(`-- Migration: %s (%s)
-- Created: %s

-- +goose Up

-- +goose Down
`, name, dialect, g.now().Format("2006-01-02 15:04:05"))
}
