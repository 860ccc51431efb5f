package validation

import (
	"log/slog"
	"os"
	"path/filepath"
)

// contentSchemas pairs each content file with its schema file name
var contentSchemas = map[string]string{
	"weapons.json":     "weapons.schema.json",
	"equipment.json":   "equipment.schema.json",
	"spells.json":      "spells.schema.json",
	"monsters.json":    "monsters.schema.json",
	"quests.json":      "quests.schema.json",
	"server_info.json": "server_info.schema.json",
}

// ValidateContentDir validates every known content file against its
// schema. Failures are logged as warnings and counted, never fatal: the
// catalog normalizers tolerate bad records individually, so a schema
// violation here is an early heads-up for content authors, not an outage.
// Missing content or schema files are skipped.
func ValidateContentDir(contentDir, schemaDir string) int {
	v := NewSchemaValidator()
	failures := 0

	for contentFile, schemaFile := range contentSchemas {
		dataPath := filepath.Join(contentDir, contentFile)
		schemaPath := filepath.Join(schemaDir, schemaFile)

		if _, err := os.Stat(dataPath); err != nil {
			continue
		}
		if _, err := os.Stat(schemaPath); err != nil {
			slog.Debug("No schema for content file", "file", contentFile)
			continue
		}

		if err := v.ValidateFile(dataPath, schemaPath); err != nil {
			slog.Warn("Content file failed schema validation", "file", contentFile, "error", err)
			failures++
		}
	}

	return failures
}
