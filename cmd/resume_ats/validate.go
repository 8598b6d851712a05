package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateSchema string

var validateCmd = &cobra.Command{
	Use:   "validate <file|->",
	Short: "Validate a resume document against the resume JSON schema",
	Long: `Validate a resume document against the embedded resume JSON schema, or against
the schema file given with --schema.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateDocument(cmd.OutOrStdout(), args[0], cmd.InOrStdin(), validateSchema)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON Schema file to validate against instead of the built-in schema")
	rootCmd.AddCommand(validateCmd)
}

// validateDocument checks source against the resume schema, or schemaPath when set,
// and reports schema violations field by field
func validateDocument(out io.Writer, source string, stdin io.Reader, schemaPath string) error {
	var err error
	if schemaPath != "" {
		if source == stdinSource {
			return fmt.Errorf("--schema requires a file argument, not stdin")
		}
		err = schemas.ValidateJSON(schemaPath, source)
	} else {
		_, err = loadSource(source, stdin)
	}

	if err == nil {
		fmt.Fprintf(out, "✓ %s is valid\n", source)
		return nil
	}

	var schemaErr *schemas.ValidationError
	if !errors.As(err, &schemaErr) {
		return err
	}

	fmt.Fprintf(out, "✗ %s does not match the schema:\n", source)
	for _, fe := range schemaErr.Errors {
		fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
	}
	return fmt.Errorf("validation failed with %d error(s)", len(schemaErr.Errors))
}
