package repository

import (
	"context"
	"slices"
	"sync"

	"todos/internal/domains/todo/model"
)

type memoryImpl struct {
	mu    sync.RWMutex
	items map[string]map[string]model.Todo
}

// NewMemory keeps items in process memory. Contents are lost on restart.
func NewMemory() Todo {
	return &memoryImpl{items: map[string]map[string]model.Todo{}}
}

// clone detaches the attachment pointer so callers never alias stored state.
func clone(todo model.Todo) model.Todo {
	if todo.AttachmentURL != nil {
		url := *todo.AttachmentURL
		todo.AttachmentURL = &url
	}

	return todo
}

func (m *memoryImpl) ListByOwner(_ context.Context, ownerID string) ([]model.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	todos := make([]model.Todo, 0, len(m.items[ownerID]))
	for _, todo := range m.items[ownerID] {
		todos = append(todos, clone(todo))
	}

	slices.SortFunc(todos, func(a, b model.Todo) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return todos, nil
}

func (m *memoryImpl) Get(_ context.Context, ownerID, todoID string) (model.Todo, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	todo, ok := m.items[ownerID][todoID]
	if !ok {
		return model.Todo{}, false, nil
	}

	return clone(todo), true, nil
}

func (m *memoryImpl) Find(_ context.Context, todoID string) (model.Todo, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, owned := range m.items {
		if todo, ok := owned[todoID]; ok {
			return clone(todo), true, nil
		}
	}

	return model.Todo{}, false, nil
}

func (m *memoryImpl) Create(_ context.Context, todo model.Todo) (model.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.items[todo.UserID] == nil {
		m.items[todo.UserID] = map[string]model.Todo{}
	}

	m.items[todo.UserID][todo.TodoID] = clone(todo)

	return clone(todo), nil
}

func (m *memoryImpl) modify(ownerID, todoID string, apply func(*model.Todo)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	todo, ok := m.items[ownerID][todoID]
	if !ok {
		return
	}

	apply(&todo)
	m.items[ownerID][todoID] = todo
}

func (m *memoryImpl) UpdateFields(_ context.Context, ownerID, todoID string, update model.Update) error {
	m.modify(ownerID, todoID, func(todo *model.Todo) {
		todo.Name = update.Name
		todo.DueDate = update.DueDate
		todo.Done = update.Done
	})

	return nil
}

func (m *memoryImpl) SetAttachmentURL(_ context.Context, ownerID, todoID, url string) error {
	m.modify(ownerID, todoID, func(todo *model.Todo) {
		todo.AttachmentURL = &url
	})

	return nil
}

func (m *memoryImpl) Delete(_ context.Context, ownerID, todoID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items[ownerID], todoID)

	if len(m.items[ownerID]) == 0 {
		delete(m.items, ownerID)
	}

	return nil
}
