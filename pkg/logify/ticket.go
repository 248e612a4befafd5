package logify

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
)

func cleanImages(images []string) []string {
	cleaned := make([]string, 0, len(images))
	for _, image := range images {
		if image = strings.TrimSpace(image); image != "" {
			cleaned = append(cleaned, image)
		}
	}
	return cleaned
}

func preloadTicket(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("CreatedBy").
		Preload("MarkedDownBy").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc").Order("id asc")
		}).
		Preload("Comments.Author").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at asc").Order("id asc")
		}).
		Preload("StatusHistory.ChangedBy")
}

func (i *Logify) createTicket(ctx context.Context, actor models.Actor, input *models.TicketInput) (*models.Ticket, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLogifyCore,
		zap.String(common.LoggerFieldLogifyCategory, common.LoggerCategoryLogifyTicket),
	)

	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.DescriptionMarkdown) == "" {
		return nil, ErrMissingFields
	}

	now := i.now()
	ticket := models.Ticket{
		Title:               title,
		DescriptionMarkdown: input.DescriptionMarkdown,
		Images:              datatypes.JSONSlice[string](cleanImages(input.Images)),
		Status:              models.TicketStatusOpen,
		CreatedByID:         actor.ID,
		Version:             1,
		StatusHistory: []models.StatusChange{{
			Status:      models.TicketStatusOpen,
			ChangedByID: actor.ID,
			ChangedAt:   now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := i.Db.Conn.WithContext(ctx).Create(&ticket).Error; err != nil {
		return nil, err
	}

	logger.Info("Ticket created", zap.String("ticket_id", ticket.ID), zap.String("created_by", actor.ID))

	i.audit(ctx, logger, &models.AuditLog{
		Action:        models.AuditActionTicketCreated,
		PerformedByID: &actor.ID,
		TargetType:    models.AuditTargetTicket,
		TargetID:      ticket.ID,
		Details:       datatypes.JSONMap{"title": ticket.Title},
	})

	return i.getTicket(ctx, ticket.ID)
}

func (i *Logify) getTicket(ctx context.Context, id string) (*models.Ticket, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	var ticket models.Ticket
	err := preloadTicket(i.Db.Conn.WithContext(ctx)).First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (i *Logify) listTickets(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := preloadTicket(i.Db.Conn.WithContext(ctx)).
		Order("created_at desc").
		Find(&tickets).Error
	return tickets, err
}

func (i *Logify) updateTicket(ctx context.Context, actor models.Actor, id string, patch *models.TicketPatch) (*models.Ticket, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLogifyCore,
		zap.String(common.LoggerFieldLogifyCategory, common.LoggerCategoryLogifyTicket),
	)

	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	ticket, err := i.getTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Version != nil && *patch.Version != ticket.Version {
		return nil, ErrStaleTicket
	}

	now := i.now()
	updates := map[string]any{}
	var changed []string

	// empty strings are skipped rather than written, same as an omitted field
	if patch.Title != nil {
		if title := strings.TrimSpace(*patch.Title); title != "" && title != ticket.Title {
			updates["title"] = title
			changed = append(changed, "title")
		}
	}
	if patch.DescriptionMarkdown != nil {
		if strings.TrimSpace(*patch.DescriptionMarkdown) != "" && *patch.DescriptionMarkdown != ticket.DescriptionMarkdown {
			updates["description_markdown"] = *patch.DescriptionMarkdown
			changed = append(changed, "descriptionMarkdown")
		}
	}
	if patch.Images != nil {
		updates["images"] = datatypes.JSONSlice[string](cleanImages(patch.Images))
		changed = append(changed, "images")
	}

	var statusChange *models.StatusChange
	if patch.Status != nil && *patch.Status != ticket.Status {
		status := *patch.Status
		updates["status"] = status
		if status.IsMarkedDown() {
			updates["marked_down_by_id"] = actor.ID
			updates["marked_down_at"] = now
		} else {
			updates["marked_down_by_id"] = nil
			updates["marked_down_at"] = nil
		}
		statusChange = &models.StatusChange{
			TicketID:    ticket.ID,
			Status:      status,
			ChangedByID: actor.ID,
			ChangedAt:   now,
		}
		changed = append(changed, "status")
	}

	if len(updates) == 0 {
		return ticket, nil
	}

	updates["version"] = gorm.Expr("version + ?", 1)
	updates["updated_at"] = now

	err = i.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Ticket{}).
			Where("id = ? AND version = ?", ticket.ID, ticket.Version).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStaleTicket
		}
		if statusChange != nil {
			return tx.Create(statusChange).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Ticket updated",
		zap.String("ticket_id", ticket.ID),
		zap.String("updated_by", actor.ID),
		zap.Strings("fields", changed),
	)

	details := datatypes.JSONMap{"fields": changed}
	if statusChange != nil {
		details["from"] = string(ticket.Status)
		details["to"] = string(statusChange.Status)
	}
	i.audit(ctx, logger, &models.AuditLog{
		Action:        models.AuditActionTicketUpdated,
		PerformedByID: &actor.ID,
		TargetType:    models.AuditTargetTicket,
		TargetID:      ticket.ID,
		Details:       details,
	})

	return i.getTicket(ctx, ticket.ID)
}

func (i *Logify) ticketExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := i.Db.Conn.WithContext(ctx).Model(&models.Ticket{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (i *Logify) addComment(ctx context.Context, actor models.Actor, ticketID string, message string) (*models.Comment, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLogifyCore,
		zap.String(common.LoggerFieldLogifyCategory, common.LoggerCategoryLogifyTicket),
	)

	if _, err := uuid.Parse(ticketID); err != nil {
		return nil, ErrInvalidID
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyComment
	}

	exists, err := i.ticketExists(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTicketNotFound
	}

	comment := models.Comment{
		TicketID:  ticketID,
		Message:   message,
		AuthorID:  actor.ID,
		CreatedAt: i.now(),
	}
	if err := i.Db.Conn.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}

	logger.Info("Comment added", zap.String("ticket_id", ticketID), zap.String("author", actor.ID))

	if err := i.Db.Conn.WithContext(ctx).Preload("Author").First(&comment, comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (i *Logify) listComments(ctx context.Context, ticketID string) ([]models.Comment, error) {
	if _, err := uuid.Parse(ticketID); err != nil {
		return nil, ErrInvalidID
	}

	exists, err := i.ticketExists(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTicketNotFound
	}

	var comments []models.Comment
	err = i.Db.Conn.WithContext(ctx).
		Preload("Author").
		Where("ticket_id = ?", ticketID).
		Order("created_at asc").
		Order("id asc").
		Find(&comments).Error
	return comments, err
}

type ITicketImpl struct {
	logify *Logify
}

func (it *ITicketImpl) CreateTicket(ctx context.Context, actor models.Actor, input *models.TicketInput) (*models.Ticket, error) {
	return it.logify.createTicket(ctx, actor, input)
}

func (it *ITicketImpl) GetTicket(ctx context.Context, id string) (*models.Ticket, error) {
	return it.logify.getTicket(ctx, id)
}

func (it *ITicketImpl) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	return it.logify.listTickets(ctx)
}

func (it *ITicketImpl) UpdateTicket(ctx context.Context, actor models.Actor, id string, patch *models.TicketPatch) (*models.Ticket, error) {
	return it.logify.updateTicket(ctx, actor, id, patch)
}

func (it *ITicketImpl) AddComment(ctx context.Context, actor models.Actor, ticketID string, message string) (*models.Comment, error) {
	return it.logify.addComment(ctx, actor, ticketID, message)
}

func (it *ITicketImpl) ListComments(ctx context.Context, ticketID string) ([]models.Comment, error) {
	return it.logify.listComments(ctx, ticketID)
}

func (i *Logify) GetITicket() ITicket {
	return &ITicketImpl{logify: i}
}
