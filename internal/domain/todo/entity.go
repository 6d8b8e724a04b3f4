package todo

import (
	"errors"
	"time"
)

// ErrNotFound indicates a todo could not be located for the requesting user.
var ErrNotFound = errors.New("todo not found")

// Todo captures a single todo item owned by a user.
type Todo struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}
