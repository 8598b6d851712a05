package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer"}
	}
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"name": "resume", "count": 2}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"count": 2}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)

	err := ValidateJSON(filepath.Join(t.TempDir(), "missing.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")

	err = ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateBytes_WrongType(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"name": 12}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Error(), "1. name:")
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.NotNil(t, errors.Unwrap(err))
}

func TestValidateResumeDocument(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantError bool
	}{
		{name: "empty object", json: `{}`},
		{name: "full document", json: `{
			"personalInfo": {"fullName": "Alex", "email": "a@b.c", "phone": "", "location": ""},
			"summary": "Led teams",
			"education": [{"school": "MIT", "degree": "BS", "year": "2018"}],
			"experience": [{"company": "Acme", "role": "Dev", "duration": "2y", "description": "- shipped"}],
			"projects": [{"name": "P", "description": "", "techStack": ["Go"], "liveUrl": "", "githubUrl": ""}],
			"skills": {"technical": ["Go"], "soft": [], "tools": []},
			"links": {"github": "", "linkedin": ""}
		}`},
		{name: "null sections", json: `{"education": null, "skills": null, "personalInfo": null}`},
		{name: "legacy skills string", json: `{"skills": "Go, SQL"}`},
		{name: "extra ui fields", json: `{"template": "Modern", "themeColor": "hsl(1, 2%, 3%)", "step": 4}`},
		{name: "summary not a string", json: `{"summary": 12}`, wantError: true},
		{name: "experience not a list", json: `{"experience": {"company": "Acme"}}`, wantError: true},
		{name: "skills list of numbers", json: `{"skills": {"technical": [1, 2]}}`, wantError: true},
		{name: "top level array", json: `[]`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResumeDocument([]byte(tt.json))
			if tt.wantError {
				var validationErr *ValidationError
				assert.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchemaLoadError(t *testing.T) {
	cause := errors.New("boom")
	err := &SchemaLoadError{Path: "x.json", Message: "bad", Cause: cause}
	assert.Equal(t, "failed to load schema x.json: bad: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	err = &SchemaLoadError{Path: "x.json", Message: "bad"}
	assert.Equal(t, "failed to load schema x.json: bad", err.Error())
}
