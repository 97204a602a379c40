package repo

import (
	"context"
	"errors"

	"github.com/wirelance/wirelance/internal/modules/model"
	"gorm.io/gorm"
)

type TicketRepo interface {
	// Create writes the ticket and its first message in one transaction.
	Create(ctx context.Context, ticket *model.Ticket, firstMessage string) error
	GetByID(ctx context.Context, ticketID int64) (*model.Ticket, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Ticket, error)
	ListMessages(ctx context.Context, ticketID int64) ([]model.TicketMessage, error)
	AddMessage(ctx context.Context, msg *model.TicketMessage) error
	Close(ctx context.Context, ticketID int64) error
}

type ticketRepo struct{ db *gorm.DB }

func NewTicketRepo(db *gorm.DB) TicketRepo {
	return &ticketRepo{db: db}
}

func (r *ticketRepo) Create(ctx context.Context, ticket *model.Ticket, firstMessage string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ticket).Error; err != nil {
			return err
		}
		return tx.Create(&model.TicketMessage{
			TicketID: ticket.TicketID,
			UserID:   ticket.UserID,
			Message:  firstMessage,
		}).Error
	})
}

func (r *ticketRepo) GetByID(ctx context.Context, ticketID int64) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepo) ListByUser(ctx context.Context, userID int64) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepo) ListMessages(ctx context.Context, ticketID int64) ([]model.TicketMessage, error) {
	var msgs []model.TicketMessage
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created").
		Find(&msgs).Error
	return msgs, err
}

func (r *ticketRepo) AddMessage(ctx context.Context, msg *model.TicketMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *ticketRepo) Close(ctx context.Context, ticketID int64) error {
	res := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("ticket_id = ?", ticketID).
		Update("is_closed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
