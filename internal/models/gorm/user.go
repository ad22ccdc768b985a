package gorm

import (
	"airport-booking/concourse/internal/constants"
	"time"
)

type User struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	FirstName    string    `gorm:"column:first_name;type:varchar(150)"`
	LastName     string    `gorm:"column:last_name;type:varchar(150)"`
	IsStaff      bool      `gorm:"column:is_staff;default:false"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Orders []Order `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

func (u User) Role() constants.Role {
	return constants.RoleFor(u.IsStaff)
}

// APIKey is only declared here for migrations; lookups go through sqlx
type APIKey struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Key       string    `gorm:"column:api_key;type:varchar(64);not null;uniqueIndex"`
	UserID    uint      `gorm:"column:user_id;not null;index"`
	Status    bool      `gorm:"column:status;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (APIKey) TableName() string {
	return "api_keys"
}
