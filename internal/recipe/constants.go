package recipe

import "time"

// Public catalog defaults
const (
	DefaultPublicLimit      = 20
	MaxPublicLimit          = 100
	DefaultCatalogCacheSize = 256
	DefaultCatalogCacheTTL  = time.Minute
)

// Catalog cache key prefixes
const (
	keyList = "list:"
	keyIDs  = "ids:"
	keyOne  = "recipe:"
)

// Log messages
const (
	LogMsgListFailed    = "Failed to list recipes"
	LogMsgGetFailed     = "Failed to get recipe"
	LogMsgCreateFailed  = "Failed to create recipe"
	LogMsgUpdateFailed  = "Failed to update recipe"
	LogMsgDeleteFailed  = "Failed to delete recipe"
	LogMsgCatalogFailed = "Failed to load public catalog"
	LogMsgCreated       = "Recipe created"
	LogMsgUpdated       = "Recipe updated"
	LogMsgDeleted       = "Recipe deleted"
	LogMsgCatalogPurged = "Public catalog cache purged"
)

// Metric operation labels
const (
	opList    = "list"
	opGet     = "get"
	opCreate  = "create"
	opUpdate  = "update"
	opDelete  = "delete"
	opCatalog = "catalog"
)
