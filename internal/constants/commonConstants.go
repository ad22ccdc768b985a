package constants

type (
	RequestSource string
	APIStatus     string
	CachePrefix   string
)

const (
	RequestSourceJWT    RequestSource = "JWT"
	RequestSourceAPIKey RequestSource = "API_KEY"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixRevokedToken CachePrefix = "revoked_token:"
)

const (
	// DateLayout is the format of departure_date / arrival_date filters
	DateLayout = "2006-01-02"

	DefaultPageSize = 10
	MaxPageSize     = 100

	MinPasswordLength = 8
)
