package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// Decode validates raw JSON against the resume document schema, migrates
// legacy shapes and returns a normalized document.
func Decode(data []byte) (*types.ResumeDocument, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, &DecodeError{Message: "document is empty"}
	}
	if !json.Valid(data) {
		return nil, &DecodeError{Message: "document is not valid JSON"}
	}

	if err := schemas.ValidateResumeDocument(data); err != nil {
		return nil, &DecodeError{
			Message: "document does not match resume schema",
			Cause:   err,
		}
	}

	data, err := pruneUnknownKeys(data)
	if err != nil {
		return nil, &DecodeError{
			Message: "failed to read JSON",
			Cause:   err,
		}
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return Normalize(&doc), nil
}

// Load reads and decodes a resume document from a JSON file
func Load(path string) (*types.ResumeDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Decode(content)
}

// Read decodes a resume document from a reader
func Read(r io.Reader) (*types.ResumeDocument, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to read input",
			Cause:   err,
		}
	}
	return Decode(content)
}
