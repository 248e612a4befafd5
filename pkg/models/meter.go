package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeterReading struct {
	ID          string    `gorm:"type:char(36);primaryKey"`
	Type        MeterType `gorm:"type:varchar(10);not null;index:idx_meter_type_date;check:type IN ('GAS','WATER')"`
	Value       float64   `gorm:"not null"`
	ReadingDate time.Time `gorm:"not null;index:idx_meter_type_date"`
}

func (r *MeterReading) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type ElectricityMeter struct {
	ID          string `gorm:"type:char(36);primaryKey"`
	MeterNumber string `gorm:"uniqueIndex;not null"`
	Location    string
	CreatedAt   time.Time

	Readings []ElectricityReading `gorm:"foreignKey:MeterID"`
}

func (m *ElectricityMeter) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type ElectricityReading struct {
	ID          string    `gorm:"type:char(36);primaryKey"`
	MeterID     string    `gorm:"type:char(36);not null;index:idx_electricity_meter_date"`
	Value       float64   `gorm:"not null"`
	ReadingDate time.Time `gorm:"not null;index:idx_electricity_meter_date"`
}

func (r *ElectricityReading) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
