package constants

const (
	MsgEmptyOrder             = "order must contain at least one ticket"
	MsgSeatAlreadyBooked      = "seat already booked"
	MsgSameSourceDestination  = "source can't be same as destination"
	MsgRouteAlreadyExists     = "route with this source and destination already exists"
	MsgArrivalBeforeDeparture = "arrival time can't be lesser than or equal to departure time"
	MsgFieldRequired          = "this field is required"
	MsgFieldBlank             = "this field may not be blank"
	MsgMustBePositive         = "ensure this value is greater than or equal to 1"
	MsgInvalidCrewPosition    = "is not a valid crew position"
	MsgInvalidDate            = "date has wrong format, use YYYY-MM-DD"
	MsgEmailTaken             = "user with this email already exists"
	MsgPasswordTooShort       = "ensure this field has at least 8 characters"
	MsgInvalidCredentials     = "no active account found with the given credentials"
	MsgAuthRequired           = "authentication credentials were not provided"
	MsgAdminRequired          = "you do not have permission to perform this action"
	MsgInvalidBody            = "invalid request body"
	MsgGeometryShrinksBooked  = "cannot shrink below seats already booked on this airplane's flights"
	MsgAirplaneTooSmall       = "airplane layout cannot hold seats already booked on this flight"
	MsgInternalError          = "internal server error"
	MsgInvalidPagination      = "page and page_size must be positive integers"
	MsgInvalidID              = "invalid id"
	MsgLogoutNeedsBearer      = "only bearer tokens can be revoked"
)
