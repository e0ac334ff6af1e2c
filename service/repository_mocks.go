package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"betcheck/events"
	"betcheck/models"
)

// MockProviderGateway is a mock implementation of ProviderGateway
type MockProviderGateway struct {
	mock.Mock
}

func (m *MockProviderGateway) FindEvent(ctx context.Context, query models.EventQuery) models.EventLookup {
	args := m.Called(ctx, query)
	return args.Get(0).(models.EventLookup)
}

func (m *MockProviderGateway) FetchSettled(ctx context.Context, lookup models.EventLookup, stat models.StatKind) models.StatLookup {
	args := m.Called(ctx, lookup, stat)
	return args.Get(0).(models.StatLookup)
}

// MockLedgerStore is a mock implementation of LedgerStore
type MockLedgerStore struct {
	mock.Mock
}

func (m *MockLedgerStore) Load(ctx context.Context) (*models.Ledger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ledger), args.Error(1)
}

func (m *MockLedgerStore) Save(ctx context.Context, ledger *models.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockLedgerStore) Archive(ctx context.Context, ledger *models.Ledger) (string, error) {
	args := m.Called(ctx, ledger)
	return args.String(0), args.Error(1)
}

// MockVisionClient is a mock implementation of VisionClient
type MockVisionClient struct {
	mock.Mock
}

func (m *MockVisionClient) Describe(ctx context.Context, image []byte, prompt string) (string, error) {
	args := m.Called(ctx, image, prompt)
	return args.String(0), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}
