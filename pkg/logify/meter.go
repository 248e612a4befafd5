package logify

import (
	"context"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
)

// RetentionPeriod is how long a reading survives; older rows are purged on the next write to the same scope.
const RetentionPeriod = 30 * 24 * time.Hour

// DayBounds returns local midnight of now's day and the instant 24h later.
func DayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}

func ParseMeterType(s string) (models.MeterType, error) {
	t := models.MeterType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidMeterType
	}
	return t, nil
}

func validReading(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value >= 0
}

func (i *Logify) listMeterReadings(ctx context.Context, meterType models.MeterType) ([]models.MeterReading, error) {
	if !meterType.IsValid() {
		return nil, ErrInvalidMeterType
	}

	var readings []models.MeterReading
	err := i.Db.Conn.WithContext(ctx).
		Where("type = ?", meterType).
		Order("reading_date asc").
		Find(&readings).Error
	return readings, err
}

func (i *Logify) addMeterReading(ctx context.Context, meterType models.MeterType, value float64) (*models.MeterReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLogifyCore,
		zap.String(common.LoggerFieldLogifyCategory, common.LoggerCategoryLogifyMeter),
	)

	if !meterType.IsValid() {
		return nil, ErrInvalidMeterType
	}
	if !validReading(value) {
		return nil, ErrInvalidReading
	}

	conn := i.Db.Conn.WithContext(ctx)
	now := i.now()
	start, end := DayBounds(now)

	var count int64
	if err := conn.Model(&models.MeterReading{}).
		Where("type = ? AND reading_date >= ? AND reading_date < ?", meterType, start, end).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateReading
	}

	reading := models.MeterReading{
		Type:        meterType,
		Value:       value,
		ReadingDate: now,
	}
	if err := conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Meter reading recorded", zap.Reflect("reading", reading))

	purge := conn.
		Where("type = ? AND reading_date < ?", meterType, now.Add(-RetentionPeriod)).
		Delete(&models.MeterReading{})
	if purge.Error != nil {
		return nil, purge.Error
	}
	if purge.RowsAffected > 0 {
		logger.Info("Expired meter readings purged",
			zap.String("type", string(meterType)),
			zap.Int64("count", purge.RowsAffected),
		)
	}

	return &reading, nil
}

type IMeterImpl struct {
	logify *Logify
}

func (im *IMeterImpl) ListReadings(ctx context.Context, meterType models.MeterType) ([]models.MeterReading, error) {
	return im.logify.listMeterReadings(ctx, meterType)
}

func (im *IMeterImpl) AddReading(ctx context.Context, meterType models.MeterType, value float64) (*models.MeterReading, error) {
	return im.logify.addMeterReading(ctx, meterType, value)
}

func (i *Logify) GetIMeter() IMeter {
	return &IMeterImpl{logify: i}
}
