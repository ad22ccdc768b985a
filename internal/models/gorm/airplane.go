package gorm

import (
	"airport-booking/concourse/internal/constants"
	"time"
)

type AirplaneType struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(63);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (AirplaneType) TableName() string {
	return "airplane_types"
}

type Airplane struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name;type:varchar(63);not null"`
	Rows           int       `gorm:"column:seat_rows;not null"`
	SeatsInRow     int       `gorm:"column:seats_in_row;not null"`
	AirplaneTypeID uint      `gorm:"column:airplane_type_id;not null;index"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	AirplaneType AirplaneType `gorm:"foreignKey:AirplaneTypeID;constraint:OnDelete:RESTRICT"`
}

func (Airplane) TableName() string {
	return "airplanes"
}

// Capacity is derived and never stored
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

type Crew struct {
	ID        uint                   `gorm:"column:id;primaryKey"`
	FirstName string                 `gorm:"column:first_name;type:varchar(63);not null"`
	LastName  string                 `gorm:"column:last_name;type:varchar(63);not null"`
	Position  constants.CrewPosition `gorm:"column:position;type:varchar(63);not null"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime"`
}

func (Crew) TableName() string {
	return "crews"
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
