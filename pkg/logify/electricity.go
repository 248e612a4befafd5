package logify

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
)

func (i *Logify) listElectricityMeters(ctx context.Context) ([]models.ElectricityMeter, error) {
	var meters []models.ElectricityMeter
	err := i.Db.Conn.WithContext(ctx).Order("meter_number asc").Find(&meters).Error
	return meters, err
}

func (i *Logify) createElectricityMeter(ctx context.Context, meterNumber string, location string) (*models.ElectricityMeter, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLogifyCore,
		zap.String(common.LoggerFieldLogifyCategory, common.LoggerCategoryLogifyMeter),
	)

	meterNumber = strings.TrimSpace(meterNumber)
	if meterNumber == "" {
		return nil, ErrMissingFields
	}

	var count int64
	if err := i.Db.Conn.WithContext(ctx).Model(&models.ElectricityMeter{}).
		Where("meter_number = ?", meterNumber).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrMeterNumberExists
	}

	meter := models.ElectricityMeter{
		MeterNumber: meterNumber,
		Location:    strings.TrimSpace(location),
		CreatedAt:   i.now(),
	}
	if err := i.Db.Conn.WithContext(ctx).Create(&meter).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMeterNumberExists
		}
		return nil, err
	}

	logger.Info("Electricity meter registered", zap.String("meter_id", meter.ID), zap.String("meter_number", meter.MeterNumber))
	return &meter, nil
}

func (i *Logify) requireElectricityMeter(ctx context.Context, meterID string) error {
	if _, err := uuid.Parse(meterID); err != nil {
		return ErrInvalidID
	}

	var count int64
	if err := i.Db.Conn.WithContext(ctx).Model(&models.ElectricityMeter{}).
		Where("id = ?", meterID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrMeterNotFound
	}
	return nil
}

func (i *Logify) listElectricityReadings(ctx context.Context, meterID string) ([]models.ElectricityReading, error) {
	if err := i.requireElectricityMeter(ctx, meterID); err != nil {
		return nil, err
	}

	var readings []models.ElectricityReading
	err := i.Db.Conn.WithContext(ctx).
		Where("meter_id = ?", meterID).
		Order("reading_date asc").
		Find(&readings).Error
	return readings, err
}

func (i *Logify) addElectricityReading(ctx context.Context, meterID string, value float64) (*models.ElectricityReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLogifyCore,
		zap.String(common.LoggerFieldLogifyCategory, common.LoggerCategoryLogifyMeter),
	)

	if err := i.requireElectricityMeter(ctx, meterID); err != nil {
		return nil, err
	}
	if !validReading(value) {
		return nil, ErrInvalidReading
	}

	conn := i.Db.Conn.WithContext(ctx)
	now := i.now()
	start, end := DayBounds(now)

	var count int64
	if err := conn.Model(&models.ElectricityReading{}).
		Where("meter_id = ? AND reading_date >= ? AND reading_date < ?", meterID, start, end).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateReading
	}

	reading := models.ElectricityReading{
		MeterID:     meterID,
		Value:       value,
		ReadingDate: now,
	}
	if err := conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Electricity reading recorded", zap.Reflect("reading", reading))

	purge := conn.
		Where("meter_id = ? AND reading_date < ?", meterID, now.Add(-RetentionPeriod)).
		Delete(&models.ElectricityReading{})
	if purge.Error != nil {
		return nil, purge.Error
	}
	if purge.RowsAffected > 0 {
		logger.Info("Expired electricity readings purged",
			zap.String("meter_id", meterID),
			zap.Int64("count", purge.RowsAffected),
		)
	}

	return &reading, nil
}

type IElectricityImpl struct {
	logify *Logify
}

func (ie *IElectricityImpl) ListMeters(ctx context.Context) ([]models.ElectricityMeter, error) {
	return ie.logify.listElectricityMeters(ctx)
}

func (ie *IElectricityImpl) CreateMeter(ctx context.Context, meterNumber string, location string) (*models.ElectricityMeter, error) {
	return ie.logify.createElectricityMeter(ctx, meterNumber, location)
}

func (ie *IElectricityImpl) ListReadings(ctx context.Context, meterID string) ([]models.ElectricityReading, error) {
	return ie.logify.listElectricityReadings(ctx, meterID)
}

func (ie *IElectricityImpl) AddReading(ctx context.Context, meterID string, value float64) (*models.ElectricityReading, error) {
	return ie.logify.addElectricityReading(ctx, meterID, value)
}

func (i *Logify) GetIElectricity() IElectricity {
	return &IElectricityImpl{logify: i}
}
