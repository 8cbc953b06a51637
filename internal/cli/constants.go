package cli

// Identity
const (
	AppName         = "recipectl"
	ProfileFileName = "profile.yaml"
	EnvProfile      = "RECIPECTL_PROFILE"
	DefaultServer   = "http://localhost:8080"
)

// Messages
const (
	MsgNotSignedIn   = "Not signed in"
	MsgSignedOut     = "Signed out"
	MsgNoIngredients = "No ingredients yet"
	MsgNoMatches     = "Nothing matches your search"
	MsgNoRecipes     = "No recipes yet"
	MsgDeleted       = "Deleted %s"
	ErrMsgBadLine    = "ingredient lines look like <ingredient-id>=<quantity>"
)
