package httpserver

import (
	"net/http"

	taskusecase "taskhive/backend/internal/usecase/task"
)

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) error {
	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	switch r.Method {
	case http.MethodGet:
		items, err := s.taskService.List(r.Context(), user.ID)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "", map[string]any{"tasks": items})
		return nil

	case http.MethodPost:
		var payload taskusecase.CreateInput
		if err := decodeJSON(r, &payload); err != nil {
			return err
		}
		item, err := s.taskService.Create(r.Context(), user.ID, payload)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusCreated, "Task created successfully", map[string]any{"task": item})
		return nil

	default:
		return methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleTaskByID(w http.ResponseWriter, r *http.Request) error {
	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	id, err := pathParam(r.URL.Path, "/api/tasks/")
	if err != nil {
		return err
	}

	switch r.Method {
	case http.MethodGet:
		item, err := s.taskService.Get(r.Context(), user.ID, id)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "", map[string]any{"task": item})
		return nil

	case http.MethodPut, http.MethodPatch:
		var payload taskusecase.UpdateInput
		if err := decodeJSON(r, &payload); err != nil {
			return err
		}
		item, err := s.taskService.Update(r.Context(), user.ID, id, payload)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "Task updated successfully", map[string]any{"task": item})
		return nil

	case http.MethodDelete:
		if err := s.taskService.Delete(r.Context(), user.ID, id); err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "Task deleted successfully", nil)
		return nil

	default:
		return methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete)
	}
}
