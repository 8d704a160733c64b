package usecase_test

import (
	"context"
	"testing"
	"time"

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

// MockCaptchaVerifier
type MockCaptchaVerifier struct {
	mock.Mock
}

func (m *MockCaptchaVerifier) Verify(ctx context.Context, token string) bool {
	args := m.Called(ctx, token)
	return args.Bool(0)
}

// MockEmailService signals sent on a channel because the use cases fire
// emails from goroutines; tests wait on sent instead of racing AssertCalled.
type MockEmailService struct {
	mock.Mock
	sent chan string
}

func NewMockEmailService() *MockEmailService {
	return &MockEmailService{sent: make(chan string, 10)}
}

// WaitForSends blocks until n emails went out or the test times out.
func (m *MockEmailService) WaitForSends(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-m.sent:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for email %d of %d", i+1, n)
		}
	}
}

func (m *MockEmailService) record(method string, params ...any) error {
	args := m.MethodCalled(method, params...)
	m.sent <- method
	return args.Error(0)
}

func (m *MockEmailService) SendLeadConfirmation(name, email string) error {
	return m.record("SendLeadConfirmation", name, email)
}

func (m *MockEmailService) SendAdminLeadNotification(lead *entity.Lead) error {
	return m.record("SendAdminLeadNotification", lead)
}

func (m *MockEmailService) SendDemoRequestConfirmation(name, email, businessName string) error {
	return m.record("SendDemoRequestConfirmation", name, email, businessName)
}

func (m *MockEmailService) SendAdminDemoNotification(req *entity.DemoRequest) error {
	return m.record("SendAdminDemoNotification", req)
}

func (m *MockEmailService) SendContactNotification(name, email, subject, message string) error {
	return m.record("SendContactNotification", name, email, subject, message)
}

func (m *MockEmailService) SendContactAutoReply(name, email, message string) error {
	return m.record("SendContactAutoReply", name, email, message)
}
