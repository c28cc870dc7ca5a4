package handlers

import (
	"context"
	"fmt"

	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/emirhanakgul/toolshop-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MockCollection implements DocumentCollection over an in-memory map.
type MockCollection struct {
	docs       map[uuid.UUID]models.Document
	order      []uuid.UUID
	LastFilter map[string]string

	FindErr   error
	InsertErr error
	DeleteErr error
}

func NewMockCollection() *MockCollection {
	return &MockCollection{docs: make(map[uuid.UUID]models.Document)}
}

func (m *MockCollection) Find(_ context.Context, filter map[string]string) ([]models.Document, error) {
	m.LastFilter = filter
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	out := make([]models.Document, 0)
	for _, id := range m.order {
		doc := m.docs[id]
		if matches(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func matches(doc models.Document, filter map[string]string) bool {
	for field, want := range filter {
		got, ok := doc.Data[field]
		if !ok || fmt.Sprint(got) != want {
			return false
		}
	}
	return true
}

func (m *MockCollection) FindByID(_ context.Context, id uuid.UUID) (*models.Document, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	doc, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (m *MockCollection) Insert(_ context.Context, data map[string]interface{}) (uuid.UUID, error) {
	if m.InsertErr != nil {
		return uuid.Nil, m.InsertErr
	}
	id := uuid.New()
	m.docs[id] = models.Document{ID: id, Data: datatypes.JSONMap(data)}
	m.order = append(m.order, id)
	return id, nil
}

func (m *MockCollection) DeleteByID(_ context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteErr != nil {
		return 0, m.DeleteErr
	}
	if _, ok := m.docs[id]; !ok {
		return 0, nil
	}
	delete(m.docs, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

// MockUserStore implements UserStore over an in-memory map.
type MockUserStore struct {
	users   map[string]models.User
	Upserts int

	Err error
}

func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[string]models.User)}
}

func (m *MockUserStore) Upsert(_ context.Context, email string, req dto.UpsertUserRequest) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Upserts++
	user, ok := m.users[email]
	if !ok {
		user = models.User{Email: email, Role: "user"}
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.ImageURL != nil {
		user.ImageURL = *req.ImageURL
	}
	m.users[email] = user
	return &user, nil
}

func (m *MockUserStore) ByEmail(_ context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	user, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *MockUserStore) All(_ context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *MockUserStore) Promote(_ context.Context, email string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	user, ok := m.users[email]
	if !ok {
		return 0, nil
	}
	user.Role = models.RoleAdmin
	m.users[email] = user
	return 1, nil
}

func (m *MockUserStore) IsAdmin(_ context.Context, email string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	user, ok := m.users[email]
	return ok && user.IsAdmin(), nil
}

// Count reports how many users are stored.
func (m *MockUserStore) Count() int { return len(m.users) }

// MockIntentCreator records the amount it was asked to charge.
type MockIntentCreator struct {
	GotAmount   int64
	GotCurrency string
	Secret      string
	Err         error
}

func (m *MockIntentCreator) CreateIntent(_ context.Context, amountMinor int64, currency string) (string, error) {
	m.GotAmount = amountMinor
	m.GotCurrency = currency
	if m.Err != nil {
		return "", m.Err
	}
	return m.Secret, nil
}
