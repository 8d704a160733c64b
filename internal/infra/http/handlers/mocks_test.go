package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, opts usecase.ListOptions) ([]*entity.Lead, int, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Lead), args.Int(1), args.Error(2)
}

func (m *MockLeadRepository) Update(ctx context.Context, id string, update usecase.LeadUpdate) (*entity.Lead, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) Stats(ctx context.Context) (*usecase.LeadStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LeadStats), args.Error(1)
}

// MockDemoRequestRepository
type MockDemoRequestRepository struct {
	mock.Mock
}

func (m *MockDemoRequestRepository) Create(ctx context.Context, req *entity.DemoRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockDemoRequestRepository) FindByID(ctx context.Context, id string) (*entity.DemoRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DemoRequest), args.Error(1)
}

func (m *MockDemoRequestRepository) List(ctx context.Context, opts usecase.ListOptions) ([]*entity.DemoRequest, int, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.DemoRequest), args.Int(1), args.Error(2)
}

func (m *MockDemoRequestRepository) Update(ctx context.Context, id string, update usecase.DemoRequestUpdate) (*entity.DemoRequest, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DemoRequest), args.Error(1)
}

func (m *MockDemoRequestRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDemoRequestRepository) Stats(ctx context.Context) (*usecase.DemoRequestStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DemoRequestStats), args.Error(1)
}

// MockAdminUserRepository
type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdminUser), args.Error(1)
}

// stubCaptcha verifies any non-empty token with a fixed verdict.
type stubCaptcha struct {
	verdict bool
}

func (s stubCaptcha) Verify(ctx context.Context, token string) bool {
	return s.verdict
}
