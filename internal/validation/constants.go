package validation

// Validation messages
const (
	MsgNameRequired     = "Name is required"
	MsgNameTooLong      = "Name is too long"
	MsgInvalidCategory  = "Invalid category"
	MsgInvalidUnit      = "Invalid unit"
	MsgPriceNotNumber   = "Price must be number"
	MsgPriceNegative    = "Price must be positive"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Email is not correct"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 6 characters long."
	MsgImageURLInvalid  = "Image must be a valid URL"
	MsgInvalidValue     = "Invalid value"
)

// MessageSeparator joins several field messages into one
const MessageSeparator = ", "

// Custom validator tags
const (
	tagCategory    = "category"
	tagUnit        = "unit"
	tagPriceNumber = "price_number"
	tagPriceNonNeg = "price_nonnegative"
)

// Recipe form field names
const (
	FieldName             = "name"
	FieldDescription      = "description"
	FieldSteps            = "steps"
	FieldImageURL         = "imageUrl"
	FieldIsPublic         = "isPublic"
	FieldIngredientPrefix = "ingredient_"
	FieldQuantityPrefix   = "quantity_"
)
