package common

const (
	// AuthorizationHeader carries the bearer credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix is prepended to the token in the authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeader tags every outbound request for correlation.
	RequestIDHeader = "X-Request-Id"
)
