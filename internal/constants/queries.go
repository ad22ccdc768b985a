package constants

// Raw sqlx queries. Written with '?' placeholders; callers pass them through sqlx.Rebind.
const (
	GetAPIKeyWithOwner = `
	SELECT k.id, k.user_id, k.status, u.is_staff, u.is_active
	FROM api_keys k
	JOIN users u ON u.id = k.user_id
	WHERE k.api_key = ?
	`

	InsertAPIKeyForEmail = `
	INSERT INTO api_keys (api_key, user_id, status, created_at)
	SELECT ?, u.id, TRUE, CURRENT_TIMESTAMP FROM users u WHERE u.email = ?
	`

	DeactivateAPIKey = `
	UPDATE api_keys SET status = FALSE WHERE api_key = ?
	`
)
