package common

// AuthorizationHeaderName is the HTTP header used to carry the access token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is prepended to the access token in the authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries a per-request correlation id for diagnostics.
const RequestIDHeaderName = "X-Request-Id"
