package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Skotchmaster/shop_api/internal/models"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCartStore mocks the CartStore interface
type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) CreateCart(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartStore) SaveCart(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

// MockHasher mocks the PasswordHasher interface
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// MockSearcher mocks the ItemSearcher interface
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) SearchItems(ctx context.Context, q string, offset, limit int) (int64, []models.Item, error) {
	args := m.Called(ctx, q, offset, limit)
	if args.Get(1) == nil {
		return args.Get(0).(int64), nil, args.Error(2)
	}
	return args.Get(0).(int64), args.Get(1).([]models.Item), args.Error(2)
}

type publishedEvent struct {
	Topic string
	Key   string
	Event map[string]any
}

type fakePublisher struct {
	events []publishedEvent
	err    error
}

func (p *fakePublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.events = append(p.events, publishedEvent{Topic: topic, Key: key, Event: event.(map[string]any)})
	return p.err
}

type fakeIndexer struct {
	indexed []models.Item
}

func (f *fakeIndexer) IndexItems(_ context.Context, items []models.Item) error {
	f.indexed = append(f.indexed, items...)
	return nil
}
