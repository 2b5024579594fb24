package models

import (
	"time"

	"gorm.io/gorm"
)

// Ride is one logged ride with the pay breakdown computed from the
// wage settings in effect when it was created or last edited. The
// computed columns are never written by the client directly.
type Ride struct {
	ID         string `json:"id" gorm:"primaryKey;size:36"`
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Date       string `json:"date" gorm:"size:10;index;not null"` // YYYY-MM-DD
	ClientName string `json:"client_name" gorm:"size:100;not null"`
	CarBrand   string `json:"car_brand" gorm:"size:50;not null"`
	CarModel   string `json:"car_model" gorm:"size:50;not null"`
	StartTime  string `json:"start_time" gorm:"size:5;not null"` // HH:MM
	EndTime    string `json:"end_time" gorm:"size:5;not null"`   // HH:MM
	ExtraCosts float64 `json:"extra_costs" gorm:"type:decimal(10,2);default:0"`
	WWVKm      float64 `json:"wwv_km" gorm:"type:decimal(10,2);default:0"`
	Notes      string  `json:"notes" gorm:"size:500"`

	// Computed by the wage package.
	TotalHours         float64 `json:"total_hours" gorm:"type:decimal(10,2)"`
	NormalHours        float64 `json:"normal_hours" gorm:"type:decimal(10,2)"`
	OvertimeHours      float64 `json:"overtime_hours" gorm:"type:decimal(10,2)"`
	NightHours         float64 `json:"night_hours" gorm:"type:decimal(10,2)"`
	NormalPay          float64 `json:"normal_pay" gorm:"type:decimal(10,2)"`
	OvertimePay        float64 `json:"overtime_pay" gorm:"type:decimal(10,2)"`
	NightPay           float64 `json:"night_pay" gorm:"type:decimal(10,2)"`
	GrossPay           float64 `json:"gross_pay" gorm:"type:decimal(10,2)"`
	WWVAmount          float64 `json:"wwv_amount" gorm:"type:decimal(10,2)"`
	SocialContribution float64 `json:"social_contribution" gorm:"type:decimal(10,2)"`
	GrossTotal         float64 `json:"gross_total" gorm:"type:decimal(10,2)"`
	NetPay             float64 `json:"net_pay" gorm:"type:decimal(10,2)"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (Ride) TableName() string {
	return "rides"
}

// Month returns the YYYY-MM prefix of the ride date.
func (r *Ride) Month() string {
	if len(r.Date) < 7 {
		return r.Date
	}
	return r.Date[:7]
}
