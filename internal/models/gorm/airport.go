package gorm

import "time"

// Airport is reference data; routes point at it as source or destination
type Airport struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name;type:varchar(63);not null"`
	ClosestBigCity string    `gorm:"column:closest_big_city;type:varchar(63);not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}

// Route is a directed airport pair. (source_id, destination_id) is unique.
type Route struct {
	ID            uint      `gorm:"column:id;primaryKey"`
	SourceID      uint      `gorm:"column:source_id;not null;uniqueIndex:idx_routes_source_destination,priority:1"`
	DestinationID uint      `gorm:"column:destination_id;not null;uniqueIndex:idx_routes_source_destination,priority:2"`
	Distance      int       `gorm:"column:distance;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Source      Airport `gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE"`
	Destination Airport `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE"`
}

func (Route) TableName() string {
	return "routes"
}
