package model

import "time"

const (
	EntityName = "todo"

	FieldUserID        = "userId"
	FieldTodoID        = "todoId"
	FieldName          = "name"
	FieldDueDate       = "dueDate"
	FieldDone          = "done"
	FieldCreatedAt     = "createdAt"
	FieldAttachmentURL = "attachmentUrl"
)

// Todo is keyed by (UserID, TodoID); neither part changes after creation.
type Todo struct {
	UserID        string    `db:"user_id" dynamodbav:"userId" json:"userId"`
	TodoID        string    `db:"todo_id" dynamodbav:"todoId" json:"todoId"`
	Name          string    `db:"name" dynamodbav:"name" json:"name"`
	DueDate       string    `db:"due_date" dynamodbav:"dueDate" json:"dueDate"`
	CreatedAt     time.Time `db:"created_at" dynamodbav:"createdAt" json:"createdAt"`
	Done          bool      `db:"done" dynamodbav:"done" json:"done"`
	AttachmentURL *string   `db:"attachment_url" dynamodbav:"attachmentUrl,omitempty" json:"attachmentUrl,omitempty"`
}

// HasAttachment reports whether an upload URL was ever issued for the todo.
func (t Todo) HasAttachment() bool {
	return t.AttachmentURL != nil && *t.AttachmentURL != ""
}

// Update holds exactly the fields a caller may change in place.
type Update struct {
	Name    string `db:"name"`
	DueDate string `db:"due_date"`
	Done    bool   `db:"done"`
}
