package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	scoreSample bool
	scoreJSON   bool
	scoreTop    int
)

var scoreCmd = &cobra.Command{
	Use:   "score [file|-]...",
	Short: "Score resume documents for ATS readiness",
	Long: `Score one or more resume JSON documents. Use "-" to read a document from stdin
and --sample to score the built-in sample. Files are scored concurrently and
reported in argument order.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreSample, "sample", false, "Score the built-in sample document")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print results as JSON")
	scoreCmd.Flags().IntVar(&scoreTop, "top", -1, "Improvements to show; 0 shows all (default from config)")
	rootCmd.AddCommand(scoreCmd)
}

// scoredDocument is the result of scoring one input
type scoredDocument struct {
	Source          string              `json:"source"`
	Score           int                 `json:"score"`
	Band            string              `json:"band"`
	Incomplete      bool                `json:"incomplete"`
	Improvements    []types.Improvement `json:"improvements"`
	TopImprovements []types.Improvement `json:"top_improvements"`
}

func runScore(cmd *cobra.Command, args []string) error {
	if scoreSample && len(args) > 0 {
		return fmt.Errorf("--sample cannot be combined with file arguments")
	}
	if !scoreSample && len(args) == 0 {
		return fmt.Errorf("no input: pass file paths, %q for stdin, or --sample", stdinSource)
	}

	top := scoreTop
	if top < 0 {
		top = cfg.TopImprovements
	}

	var results []scoredDocument
	if scoreSample {
		results = []scoredDocument{scoreDocument("sample", resume.Sample(), top)}
	} else {
		var err error
		results, err = scoreSources(cmd.Context(), args, cmd.InOrStdin(), top)
		if err != nil {
			return err
		}
	}

	return writeScores(cmd.OutOrStdout(), results, scoreJSON, top)
}

// scoreDocument scores doc and shapes the result for output
func scoreDocument(source string, doc *types.ResumeDocument, top int) scoredDocument {
	result := ats.Score(doc)
	return scoredDocument{
		Source:          source,
		Score:           result.Score,
		Band:            ats.Band(result.Score),
		Incomplete:      resume.IsIncomplete(doc),
		Improvements:    result.Improvements,
		TopImprovements: ats.Top(result, top),
	}
}

// scoreSources loads and scores every source concurrently.
// Results are returned in the order of sources; the first failure cancels the rest.
func scoreSources(ctx context.Context, sources []string, stdin io.Reader, top int) ([]scoredDocument, error) {
	if err := checkSources(sources); err != nil {
		return nil, err
	}

	results := make([]scoredDocument, len(sources))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range sources {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			doc, err := loadSource(src, stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}
			results[i] = scoreDocument(src, doc, top)
			log.Debug().Str("source", src).Int("score", results[i].Score).Msg("Scored document")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeScores prints results as boxed reports, or as JSON.
// A single result is encoded as an object, several as an array.
func writeScores(out io.Writer, results []scoredDocument, asJSON bool, top int) error {
	if asJSON {
		if len(results) == 1 {
			return writeJSON(out, results[0])
		}
		return writeJSON(out, results)
	}

	printer := observability.NewPrinter(out)
	for _, r := range results {
		title := ""
		if len(results) > 1 {
			title = "ATS SCORE: " + r.Source
		}
		printer.PrintScore(title, types.ScoreResult{Score: r.Score, Improvements: r.Improvements}, top)
		if r.Incomplete {
			fmt.Fprintln(out, "Note: resume is incomplete. Add your name and at least one experience or project.")
		}
	}
	return nil
}
