package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
)

// ScoreResponse is the response of the scoring endpoints
type ScoreResponse struct {
	types.ScoreResult
	Band            string              `json:"band"`
	TopImprovements []types.Improvement `json:"top_improvements"`
	Incomplete      bool                `json:"incomplete"`
}

// scoreQuery holds the query parameters accepted by scoring endpoints
type scoreQuery struct {
	Top int `validate:"gte=0,lte=11"`
}

// parseScoreQuery reads ?top=N, defaulting to the configured compact size
func (s *Server) parseScoreQuery(r *http.Request) (scoreQuery, error) {
	q := scoreQuery{Top: s.topImprovements}
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, &ErrValidation{Field: "top", Message: "must be an integer"}
		}
		q.Top = n
	}
	if err := s.validate.Struct(q); err != nil {
		return q, &ErrValidation{Field: "top", Message: "must be between 0 and 11"}
	}
	return q, nil
}

// buildScoreResponse scores a document and shapes it for display
func buildScoreResponse(doc *types.ResumeDocument, top int) ScoreResponse {
	result := ats.Score(doc)
	return ScoreResponse{
		ScoreResult:     result,
		Band:            ats.Band(result.Score),
		TopImprovements: ats.Top(result, top),
		Incomplete:      resume.IsIncomplete(doc),
	}
}

// readDocument decodes a resume document from the request body
func readDocument(w http.ResponseWriter, r *http.Request) (*types.ResumeDocument, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	return resume.Decode(body)
}

// handleScore scores the resume document in the request body
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseScoreQuery(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	doc, err := readDocument(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, buildScoreResponse(doc, q.Top))
}

// handleRules returns the scoring rule table
func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"max_score": ats.MaxScore,
		"rules":     ats.Rules(),
	})
}

// handleSample returns the sample resume document
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("empty") == "true" {
		s.jsonResponse(w, http.StatusOK, resume.Initial())
		return
	}
	s.jsonResponse(w, http.StatusOK, resume.Sample())
}
