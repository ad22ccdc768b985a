package entities

// ApiKey is an api_keys row joined with the owning user's flags
type ApiKey struct {
	ID       int64 `db:"id"`
	UserID   uint  `db:"user_id"`
	Status   bool  `db:"status"`
	IsStaff  bool  `db:"is_staff"`
	IsActive bool  `db:"is_active"`
}
