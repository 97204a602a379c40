package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wirelance/wirelance/internal/infra/httpclient"
	"github.com/wirelance/wirelance/internal/modules/model"
	"go.uber.org/zap"
)

// MockTicketRepo is a mock implementation of repo.TicketRepo
type MockTicketRepo struct {
	mock.Mock
}

func (m *MockTicketRepo) Create(ctx context.Context, ticket *model.Ticket, firstMessage string) error {
	args := m.Called(ctx, ticket, firstMessage)
	return args.Error(0)
}

func (m *MockTicketRepo) GetByID(ctx context.Context, ticketID int64) (*model.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepo) ListByUser(ctx context.Context, userID int64) ([]model.Ticket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ticket), args.Error(1)
}

func (m *MockTicketRepo) ListMessages(ctx context.Context, ticketID int64) ([]model.TicketMessage, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TicketMessage), args.Error(1)
}

func (m *MockTicketRepo) AddMessage(ctx context.Context, msg *model.TicketMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockTicketRepo) Close(ctx context.Context, ticketID int64) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

func newTestTicketService(r *MockTicketRepo) TicketService {
	log := zap.NewNop()
	return NewTicketService(r, &httpclient.OpsClient{Logger: log}, log)
}

func TestTicketService_Create(t *testing.T) {
	tests := []struct {
		name           string
		category       string
		message        string
		setup          func(*MockTicketRepo)
		expectError    bool
		expectedErrors []string
	}{
		{
			name:     "successful creation",
			category: "Payments",
			message:  "Invoice was not issued",
			setup: func(r *MockTicketRepo) {
				r.On("Create", mock.Anything, mock.MatchedBy(func(ticket *model.Ticket) bool {
					return ticket.UserID == 7 &&
						ticket.Category == "Payments" &&
						strings.HasPrefix(ticket.TicketCode, "tck-")
				}), "Invoice was not issued").Return(nil)
			},
		},
		{
			name:           "unknown category",
			category:       "Billing",
			message:        "Invoice was not issued",
			setup:          func(r *MockTicketRepo) {},
			expectError:    true,
			expectedErrors: []string{"unknown ticket category"},
		},
		{
			name:        "empty message",
			category:    "Payments",
			setup:       func(r *MockTicketRepo) {},
			expectError: true,
			expectedErrors: []string{
				"ticket message is empty",
			},
		},
		{
			name:        "both problems reported together",
			category:    "",
			message:     "",
			setup:       func(r *MockTicketRepo) {},
			expectError: true,
			expectedErrors: []string{
				"unknown ticket category",
				"ticket message is empty",
			},
		},
		{
			name:     "repo error",
			category: "Other",
			message:  "Something broke",
			setup: func(r *MockTicketRepo) {
				r.On("Create", mock.Anything, mock.Anything, "Something broke").Return(errors.New("insert failed"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockTicketRepo{}
			tt.setup(mockRepo)

			service := newTestTicketService(mockRepo)
			ticket, err := service.Create(context.Background(), 7, tt.category, tt.message)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, ticket)
				for _, msg := range tt.expectedErrors {
					assert.Contains(t, err.Error(), msg)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Payments", ticket.Category)
				assert.True(t, strings.HasPrefix(ticket.TicketCode, "tck-"))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTicketService_AddMessage(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		setup       func(*MockTicketRepo)
		expectError bool
		errorMsg    string
	}{
		{
			name:    "message added to open ticket",
			message: "Any update?",
			setup: func(r *MockTicketRepo) {
				r.On("GetByID", mock.Anything, int64(3)).Return(&model.Ticket{TicketID: 3}, nil)
				r.On("AddMessage", mock.Anything, mock.MatchedBy(func(msg *model.TicketMessage) bool {
					return msg.TicketID == 3 && msg.UserID == 7 && msg.Message == "Any update?"
				})).Return(nil)
			},
		},
		{
			name:    "closed ticket rejects messages",
			message: "Any update?",
			setup: func(r *MockTicketRepo) {
				r.On("GetByID", mock.Anything, int64(3)).Return(&model.Ticket{TicketID: 3, IsClosed: true}, nil)
			},
			expectError: true,
			errorMsg:    "ticket is closed",
		},
		{
			name:        "empty message rejected before lookup",
			message:     "",
			setup:       func(r *MockTicketRepo) {},
			expectError: true,
			errorMsg:    "ticket message is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockTicketRepo{}
			tt.setup(mockRepo)

			service := newTestTicketService(mockRepo)
			msg, err := service.AddMessage(context.Background(), 3, 7, tt.message)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, msg)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, msg)
				assert.Equal(t, tt.message, msg.Message)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTicketService_GetThread(t *testing.T) {
	ticket := &model.Ticket{TicketID: 3, Category: "Projects"}
	messages := []model.TicketMessage{
		{MessageID: 1, TicketID: 3, Message: "first"},
		{MessageID: 2, TicketID: 3, Message: "second"},
	}

	mockRepo := &MockTicketRepo{}
	mockRepo.On("GetByID", mock.Anything, int64(3)).Return(ticket, nil)
	mockRepo.On("ListMessages", mock.Anything, int64(3)).Return(messages, nil)

	service := newTestTicketService(mockRepo)
	out, err := service.GetThread(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, ticket, out.Ticket)
	assert.Len(t, out.Messages, 2)
	mockRepo.AssertExpectations(t)
}
