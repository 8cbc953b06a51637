package auth

import "time"

// Token settings
const (
	// BcryptCost matches the cost used for every stored hash
	BcryptCost = 10

	BearerPrefix   = "Bearer "
	HeaderAuth     = "Authorization"
	DefaultSession = time.Hour
)

// Limiter and revocation bookkeeping
const (
	DefaultRevocationCacheSize = 10000
	DefaultLimiterCacheSize    = 10000
	LimiterIdleTTL             = 10 * time.Minute
)

// Log messages
const (
	LogMsgSignUpFailed   = "Sign up failed"
	LogMsgSignInFailed   = "Sign in failed"
	LogMsgSignInLimited  = "Sign in rate limited"
	LogMsgSignedOut      = "Session revoked"
	LogMsgTokenRejected  = "Session token rejected"
	LogMsgHashFailed     = "Failed to hash password"
	LogMsgTokenIssueFail = "Failed to issue session token"
)
