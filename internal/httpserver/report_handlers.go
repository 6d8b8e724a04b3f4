package httpserver

import (
	"net/http"

	reportusecase "taskhive/backend/internal/usecase/report"
)

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) error {
	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	switch r.Method {
	case http.MethodGet:
		items, err := s.reportService.List(r.Context(), user.ID)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "", map[string]any{"reports": items})
		return nil

	case http.MethodPost:
		var payload reportusecase.CreateInput
		if err := decodeJSON(r, &payload); err != nil {
			return err
		}
		created, err := s.reportService.Create(r.Context(), user.ID, payload)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusCreated, "Report created successfully", created)
		return nil

	default:
		return methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleReportByID(w http.ResponseWriter, r *http.Request) error {
	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	id, err := pathParam(r.URL.Path, "/api/reports/")
	if err != nil {
		return err
	}

	switch r.Method {
	case http.MethodGet:
		item, err := s.reportService.Get(r.Context(), user.ID, id)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "", item)
		return nil

	case http.MethodPatch:
		var payload reportusecase.CompleteInput
		if err := decodeJSON(r, &payload); err != nil {
			return err
		}
		item, err := s.reportService.Complete(r.Context(), user.ID, id, payload)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "Report updated successfully", map[string]any{"report": item})
		return nil

	case http.MethodDelete:
		if err := s.reportService.Delete(r.Context(), user.ID, id); err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "Report deleted successfully", nil)
		return nil

	default:
		return methodNotAllowed(w, http.MethodGet, http.MethodPatch, http.MethodDelete)
	}
}
