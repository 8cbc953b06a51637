package client

import "time"

// Defaults
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
)

// API paths
const (
	pathSignUp      = "/api/v1/auth/signup"
	pathSignIn      = "/api/v1/auth/signin"
	pathSignOut     = "/api/v1/auth/signout"
	pathSession     = "/api/v1/auth/session"
	pathIngredients = "/api/v1/ingredients"
	pathRecipes     = "/api/v1/recipes"
	pathCatalog     = "/api/v1/catalog"
)

const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
	contentTypeForm   = "application/x-www-form-urlencoded"
)

// Log messages
const (
	LogMsgRetrying      = "Retrying API request"
	LogMsgRequestFailed = "API request failed"
)
