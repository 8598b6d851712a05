package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
)

// stdinSource is the argument that reads a document from standard input
const stdinSource = "-"

// loadSource reads a resume document from a file path or stdin
func loadSource(source string, stdin io.Reader) (*types.ResumeDocument, error) {
	if source == stdinSource {
		return resume.Read(stdin)
	}
	return resume.Load(source)
}

// checkSources rejects reading stdin more than once
func checkSources(sources []string) error {
	seen := false
	for _, src := range sources {
		if src != stdinSource {
			continue
		}
		if seen {
			return fmt.Errorf("stdin (%q) can only be given once", stdinSource)
		}
		seen = true
	}
	return nil
}

// writeJSON writes v as indented JSON
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
