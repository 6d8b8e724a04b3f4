package httpserver

import (
	"net/http"

	todousecase "taskhive/backend/internal/usecase/todo"
)

func (s *Server) handleTodos(w http.ResponseWriter, r *http.Request) error {
	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	switch r.Method {
	case http.MethodGet:
		items, err := s.todoService.List(r.Context(), user.ID)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "", map[string]any{"todos": items})
		return nil

	case http.MethodPost:
		var payload todousecase.CreateInput
		if err := decodeJSON(r, &payload); err != nil {
			return err
		}
		item, err := s.todoService.Create(r.Context(), user.ID, payload)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusCreated, "Todo created successfully", map[string]any{"todo": item})
		return nil

	default:
		return methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleTodoByID(w http.ResponseWriter, r *http.Request) error {
	user, err := userFromContext(r.Context())
	if err != nil {
		return err
	}

	id, err := pathParam(r.URL.Path, "/api/todos/")
	if err != nil {
		return err
	}

	switch r.Method {
	case http.MethodGet:
		item, err := s.todoService.Get(r.Context(), user.ID, id)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "", map[string]any{"todo": item})
		return nil

	case http.MethodPut, http.MethodPatch:
		var payload todousecase.UpdateInput
		if err := decodeJSON(r, &payload); err != nil {
			return err
		}
		item, err := s.todoService.Update(r.Context(), user.ID, id, payload)
		if err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "Todo updated successfully", map[string]any{"todo": item})
		return nil

	case http.MethodDelete:
		if err := s.todoService.Delete(r.Context(), user.ID, id); err != nil {
			return err
		}
		s.writeSuccess(w, http.StatusOK, "Todo deleted successfully", nil)
		return nil

	default:
		return methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete)
	}
}
