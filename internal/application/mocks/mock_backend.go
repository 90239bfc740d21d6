// Package mocks contiene mocks de testify para los puertos de la aplicación.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/estoque-meias/internal/application/dto"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

// MockBackend implementa ports.Backend.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	if s := args.Get(0); s != nil {
		return s.(*entity.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBackend) ListProducts(ctx context.Context, term string) ([]entity.Product, error) {
	args := m.Called(ctx, term)
	if ps := args.Get(0); ps != nil {
		return ps.([]entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBackend) CreateProduct(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error) {
	args := m.Called(ctx, draft)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBackend) UpdateProduct(ctx context.Context, id string, draft entity.ProductDraft) (*entity.Product, error) {
	args := m.Called(ctx, id, draft)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBackend) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) CreateMovement(ctx context.Context, mov entity.Movement) (*entity.MovementReceipt, error) {
	args := m.Called(ctx, mov)
	if r := args.Get(0); r != nil {
		return r.(*entity.MovementReceipt), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockReportGenerator implementa ports.StockReportGenerator.
type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) GenerateStockReport(ctx context.Context, report dto.StockReport) ([]byte, error) {
	args := m.Called(ctx, report)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}
