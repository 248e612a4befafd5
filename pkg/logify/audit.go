package logify

import (
	"context"

	"go.uber.org/zap"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
)

const MaxAuditLogs = 100

func (i *Logify) recordAudit(ctx context.Context, entry *models.AuditLog) error {
	logger := common.GetLoggerWith(
		common.LoggerNameLogifyCore,
		zap.String(common.LoggerFieldLogifyCategory, common.LoggerCategoryLogifyAudit),
	)

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = i.now()
	}

	if err := i.Db.Conn.WithContext(ctx).Create(entry).Error; err != nil {
		return err
	}

	logger.Info("Audit recorded",
		zap.String("action", entry.Action),
		zap.String("target_type", entry.TargetType),
		zap.String("target_id", entry.TargetID),
	)
	return nil
}

func (i *Logify) listRecentAudit(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > MaxAuditLogs {
		limit = MaxAuditLogs
	}

	var logs []models.AuditLog
	err := i.Db.Conn.WithContext(ctx).
		Preload("PerformedBy").
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// audit writes through the Audit service without failing the caller: the
// primary write has already committed when this runs.
func (i *Logify) audit(ctx context.Context, logger *zap.Logger, entry *models.AuditLog) {
	if i.Audit == nil {
		logger.Warn("audit service not available", zap.String("action", entry.Action))
		return
	}
	if err := i.Audit.Record(ctx, entry); err != nil {
		logger.Error("Failed to record audit", zap.String("action", entry.Action), zap.Error(err))
	}
}

type IAuditImpl struct {
	logify *Logify
}

func (ia *IAuditImpl) Record(ctx context.Context, entry *models.AuditLog) error {
	return ia.logify.recordAudit(ctx, entry)
}

func (ia *IAuditImpl) ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	return ia.logify.listRecentAudit(ctx, limit)
}

func (i *Logify) GetIAudit() IAudit {
	return &IAuditImpl{logify: i}
}
