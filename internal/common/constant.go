package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// authenticated requests.
const AuthorizationHeaderName = "Authorization"

// DefaultCategory substitutes for an empty transaction category.
const DefaultCategory = "Other"
