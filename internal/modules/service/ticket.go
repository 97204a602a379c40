package service

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/infra/httpclient"
	"github.com/wirelance/wirelance/internal/modules/model"
	"github.com/wirelance/wirelance/internal/modules/repo"
	"github.com/wirelance/wirelance/internal/pkg/utils"
	"go.uber.org/zap"
)

// ticketCategories the call-center surface accepts.
var ticketCategories = map[string]struct{}{
	"Access":     {},
	"Payments":   {},
	"Projects":   {},
	"Moderation": {},
	"Other":      {},
}

type TicketService interface {
	Create(ctx context.Context, userID int64, category, message string) (*model.Ticket, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Ticket, error)
	GetThread(ctx context.Context, ticketID int64) (*TicketThreadOutput, error)
	AddMessage(ctx context.Context, ticketID, userID int64, message string) (*model.TicketMessage, error)
	Close(ctx context.Context, ticketID int64) error
}

// TicketThreadOutput is a ticket with its message thread.
type TicketThreadOutput struct {
	Ticket   *model.Ticket         `json:"ticket"`
	Messages []model.TicketMessage `json:"messages"`
}

type ticketService struct {
	r   repo.TicketRepo
	ops *httpclient.OpsClient
	log *zap.Logger
}

func NewTicketService(r repo.TicketRepo, ops *httpclient.OpsClient, log *zap.Logger) TicketService {
	return &ticketService{r: r, ops: ops, log: log}
}

func (s *ticketService) Create(ctx context.Context, userID int64, category, message string) (*model.Ticket, error) {
	var fieldErrs []error
	if _, ok := ticketCategories[category]; !ok {
		fieldErrs = append(fieldErrs, errors.New("unknown ticket category"))
	}
	if message == "" {
		fieldErrs = append(fieldErrs, errors.New("ticket message is empty"))
	}
	if len(fieldErrs) > 0 {
		err := errors.Join(fieldErrs...)
		s.log.Sugar().Errorw("ticket validation failed", "userId", userID, "err", err)
		s.ops.SendError(ctx, "ticket.create", err)
		return nil, err
	}

	code, err := utils.GenerateCode("tck-", 12)
	if err != nil {
		return nil, err
	}

	ticket := &model.Ticket{
		UserID:     userID,
		Category:   category,
		TicketCode: code,
	}
	if err := s.r.Create(ctx, ticket, message); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) ListByUser(ctx context.Context, userID int64) ([]model.Ticket, error) {
	return s.r.ListByUser(ctx, userID)
}

func (s *ticketService) GetThread(ctx context.Context, ticketID int64) (*TicketThreadOutput, error) {
	ticket, err := s.r.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	messages, err := s.r.ListMessages(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return &TicketThreadOutput{Ticket: ticket, Messages: messages}, nil
}

func (s *ticketService) AddMessage(ctx context.Context, ticketID, userID int64, message string) (*model.TicketMessage, error) {
	if message == "" {
		return nil, errors.New("ticket message is empty")
	}
	ticket, err := s.r.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.IsClosed {
		return nil, errors.New("ticket is closed")
	}

	msg := &model.TicketMessage{TicketID: ticketID, UserID: userID, Message: message}
	if err := s.r.AddMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ticketService) Close(ctx context.Context, ticketID int64) error {
	return s.r.Close(ctx, ticketID)
}
