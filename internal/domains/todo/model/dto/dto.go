package dto

import (
	"strings"

	"github.com/google/uuid"

	"todos/internal/domains/todo/model"
	"todos/shared/constant"
	"todos/shared/timezone"
)

type CreateTodoRequest struct {
	Name    string `json:"name" validate:"notblank,max=255"`
	DueDate string `json:"dueDate" validate:"required,max=64"`
}

// ToModel builds a new todo owned by user with a fresh random id.
func (c *CreateTodoRequest) ToModel(user string) model.Todo {
	return model.Todo{
		UserID:    user,
		TodoID:    uuid.NewString(),
		Name:      c.Name,
		DueDate:   c.DueDate,
		CreatedAt: timezone.Now(),
		Done:      false,
	}
}

// UpdateTodoRequest leaves the blank name check to the service, which runs it
// before touching the store.
type UpdateTodoRequest struct {
	Name    string `json:"name" validate:"max=255"`
	DueDate string `json:"dueDate" validate:"required,max=64"`
	Done    *bool  `json:"done" validate:"required"`
}

// ToUpdate trims the name.
func (u *UpdateTodoRequest) ToUpdate() model.Update {
	update := model.Update{
		Name:    strings.TrimSpace(u.Name),
		DueDate: u.DueDate,
	}

	if u.Done != nil {
		update.Done = *u.Done
	}

	return update
}

type TodoResponse struct {
	UserID        string  `json:"userId"`
	TodoID        string  `json:"todoId"`
	Name          string  `json:"name"`
	DueDate       string  `json:"dueDate"`
	CreatedAt     string  `json:"createdAt"`
	Done          bool    `json:"done"`
	AttachmentURL *string `json:"attachmentUrl,omitempty"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.UserID = model.UserID
	r.TodoID = model.TodoID
	r.Name = model.Name
	r.DueDate = model.DueDate
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.Done = model.Done
	r.AttachmentURL = model.AttachmentURL
}

type ItemResponse struct {
	Item TodoResponse `json:"item"`
}

type GetTodosResponse struct {
	Items []TodoResponse `json:"items"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo) {
	r.Items = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
}

type EmptyResponse struct{}
