package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
)

// listDraftsQuery holds the query parameters of GET /drafts
type listDraftsQuery struct {
	Limit int `validate:"gte=0,lte=200"`
}

// DraftListResponse is the response of GET /drafts
type DraftListResponse struct {
	Drafts []db.DraftSummary `json:"drafts"`
	Count  int               `json:"count"`
}

// parseDraftID parses the {id} path value
func parseDraftID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}

// requireDrafts returns the draft store or an error when none is configured
func (s *Server) requireDrafts() (DraftStore, error) {
	if s.drafts == nil {
		return nil, &ErrStorageUnavailable{}
	}
	return s.drafts, nil
}

// loadDraft fetches a draft, mapping a missing row to ErrDraftNotFound
func (s *Server) loadDraft(r *http.Request) (*db.Draft, error) {
	store, err := s.requireDrafts()
	if err != nil {
		return nil, err
	}
	id, err := parseDraftID(r)
	if err != nil {
		return nil, err
	}

	draft, err := store.GetDraft(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, &ErrDraftNotFound{DraftID: id}
	}
	return draft, nil
}

// handleListDrafts lists the most recently updated drafts
func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	store, err := s.requireDrafts()
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	q := listDraftsQuery{}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.errorFromErr(w, &ErrValidation{Field: "limit", Message: "must be an integer"})
			return
		}
		q.Limit = n
	}
	if err := s.validate.Struct(q); err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "limit", Message: "must be between 0 and 200"})
		return
	}

	drafts, err := store.ListDrafts(r.Context(), db.ClampListLimit(q.Limit))
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, DraftListResponse{Drafts: drafts, Count: len(drafts)})
}

// handleCreateDraft stores the resume document in the request body
func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	store, err := s.requireDrafts()
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	doc, err := readDocument(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	draft, err := store.CreateDraft(r.Context(), doc)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	w.Header().Set("Location", "/drafts/"+draft.ID.String())
	s.jsonResponse(w, http.StatusCreated, draft)
}

// handleGetDraft returns a stored draft
func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := s.loadDraft(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, draft)
}

// handleUpdateDraft replaces the document of a stored draft
func (s *Server) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	store, err := s.requireDrafts()
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	id, err := parseDraftID(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	doc, err := readDocument(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	draft, err := store.UpdateDraft(r.Context(), id, doc)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	if draft == nil {
		s.errorFromErr(w, &ErrDraftNotFound{DraftID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, draft)
}

// handleDeleteDraft deletes a stored draft
func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	store, err := s.requireDrafts()
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	id, err := parseDraftID(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	deleted, err := store.DeleteDraft(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	if !deleted {
		s.errorFromErr(w, &ErrDraftNotFound{DraftID: id})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleScoreDraft scores a stored draft
func (s *Server) handleScoreDraft(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseScoreQuery(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	draft, err := s.loadDraft(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, buildScoreResponse(&draft.Document, q.Top))
}
