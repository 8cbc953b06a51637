package ingredient

// Log messages
const (
	LogMsgListFailed   = "Failed to list ingredients"
	LogMsgCreateFailed = "Failed to create ingredient"
	LogMsgDeleteFailed = "Failed to delete ingredient"
	LogMsgCreated      = "Ingredient created"
	LogMsgDeleted      = "Ingredient deleted"
)

// Metric operation labels
const (
	opList   = "list"
	opCreate = "create"
	opDelete = "delete"
)
