package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()

	// Create temp directory for test files
	tmpDir := t.TempDir()

	// Catalog-shaped schema: an array of records with required fields
	schemaPath := filepath.Join(tmpDir, "test.schema.json")
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "array",
		"items": {
			"type": "object",
			"properties": {
				"id": {"type": "string"},
				"name": {"type": "string"},
				"attack": {"type": "integer", "minimum": 0}
			},
			"required": ["id", "name"]
		}
	}`
	if err := os.WriteFile(schemaPath, []byte(schemaContent), 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid data",
			data:      `[{"id": "weapon_001", "name": "Serpent Sword", "attack": 26}]`,
			wantError: false,
		},
		{
			name:      "valid data without optional field",
			data:      `[{"id": "weapon_001", "name": "Serpent Sword"}]`,
			wantError: false,
		},
		{
			name:      "missing required field",
			data:      `[{"attack": 26}]`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "wrong type for field",
			data:      `[{"id": "weapon_001", "name": "Serpent Sword", "attack": "high"}]`,
			wantError: true,
			errorMsg:  "type",
		},
		{
			name:      "constraint violation",
			data:      `[{"id": "weapon_001", "name": "Serpent Sword", "attack": -5}]`,
			wantError: true,
			errorMsg:  "minimum",
		},
		{
			name:      "invalid JSON",
			data:      `[{"id": "weapon_001", }]`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "data.json")
			if err := os.WriteFile(dataPath, []byte(tt.data), 0644); err != nil {
				t.Fatalf("Failed to write data file: %v", err)
			}

			err := validator.ValidateFile(dataPath, schemaPath)
			if tt.wantError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	t.Run("missing data file", func(t *testing.T) {
		err := validator.ValidateFile(filepath.Join(tmpDir, "absent.json"), schemaPath)
		if err == nil || !strings.Contains(err.Error(), "failed to read data file") {
			t.Errorf("expected read error, got %v", err)
		}
	})

	t.Run("missing schema file", func(t *testing.T) {
		dataPath := filepath.Join(tmpDir, "data.json")
		if err := os.WriteFile(dataPath, []byte(`[]`), 0644); err != nil {
			t.Fatalf("Failed to write data file: %v", err)
		}
		err := validator.ValidateFile(dataPath, filepath.Join(tmpDir, "absent.schema.json"))
		if err == nil || !strings.Contains(err.Error(), "failed to load schema") {
			t.Errorf("expected schema load error, got %v", err)
		}
	})
}

func TestValidateContentDir(t *testing.T) {
	t.Run("counts schema violations without failing", func(t *testing.T) {
		contentDir := t.TempDir()
		schemaDir := t.TempDir()

		schema := `{
			"$schema": "http://json-schema.org/draft-07/schema#",
			"type": "array",
			"items": {"type": "object", "required": ["id"]}
		}`
		if err := os.WriteFile(filepath.Join(schemaDir, "weapons.schema.json"), []byte(schema), 0644); err != nil {
			t.Fatalf("Failed to write schema: %v", err)
		}
		if err := os.WriteFile(filepath.Join(contentDir, "weapons.json"), []byte(`[{"name": "no id"}]`), 0644); err != nil {
			t.Fatalf("Failed to write content: %v", err)
		}

		if got := ValidateContentDir(contentDir, schemaDir); got != 1 {
			t.Errorf("expected 1 failure, got %d", got)
		}
	})

	t.Run("missing files are skipped", func(t *testing.T) {
		if got := ValidateContentDir(t.TempDir(), t.TempDir()); got != 0 {
			t.Errorf("expected 0 failures, got %d", got)
		}
	})
}
