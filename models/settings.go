package models

import (
	"time"

	"gorm.io/gorm"
)

// Default wage settings applied on first access, Belgian chauffeur CAO rates.
const (
	DefaultBaseRate              = 12.83
	DefaultOvertimeMultiplier    = 1.5
	DefaultNightSurcharge        = 1.46
	DefaultWWVRate               = 0.26
	DefaultSocialContributionPct = 2.71
	DefaultNormalHoursThreshold  = 9.0
)

// WageSettings holds the per-user rates used to price a ride. A ride
// snapshots these values at creation/edit time; changing them never
// recomputes stored rides.
type WageSettings struct {
	UserID                uint           `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	BaseRate              float64        `json:"base_rate" gorm:"type:decimal(10,2);not null"`
	OvertimeMultiplier    float64        `json:"overtime_multiplier" gorm:"type:decimal(10,2);not null"`
	NightSurcharge        float64        `json:"night_surcharge" gorm:"type:decimal(10,2);not null"`
	WWVRate               float64        `json:"wwv_rate" gorm:"type:decimal(10,2);not null"`
	SocialContributionPct float64        `json:"social_contribution_pct" gorm:"type:decimal(10,2);not null"`
	NormalHoursThreshold  float64        `json:"normal_hours_threshold" gorm:"type:decimal(10,2);not null"`
	CreatedAt             time.Time      `json:"-"`
	UpdatedAt             time.Time      `json:"-"`
	DeletedAt             gorm.DeletedAt `json:"-" gorm:"index"`
	User                  User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (WageSettings) TableName() string {
	return "wage_settings"
}

// DefaultWageSettings returns the settings a user starts with.
func DefaultWageSettings(userID uint) WageSettings {
	return WageSettings{
		UserID:                userID,
		BaseRate:              DefaultBaseRate,
		OvertimeMultiplier:    DefaultOvertimeMultiplier,
		NightSurcharge:        DefaultNightSurcharge,
		WWVRate:               DefaultWWVRate,
		SocialContributionPct: DefaultSocialContributionPct,
		NormalHoursThreshold:  DefaultNormalHoursThreshold,
	}
}
