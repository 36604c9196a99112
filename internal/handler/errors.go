package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPlayerID   = "Invalid player ID"
	ErrMsgInvalidPercent    = "Invalid rarity_percent parameter"

	// Operation error messages
	ErrMsgRegisterPlayerFailed = "Failed to register player"
	ErrMsgGetPlayerFailed      = "Failed to get player"
	ErrMsgOpenCasesFailed      = "Failed to open cases"
	ErrMsgClaimOfflineFailed   = "Failed to claim offline progress"
	ErrMsgBuyUpgradeFailed     = "Failed to buy upgrade"
	ErrMsgGetUpgradesFailed    = "Failed to get upgrades"
	ErrMsgGetPoolFailed        = "Failed to get pool"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgPlayerNotFoundError    = "Player not found"
	ErrMsgPlayerExistsError      = "That username is taken"
	ErrMsgNoCasesError           = "No cases left to open"
	ErrMsgInsufficientScoreError = "Not enough score"
	ErrMsgUnknownUpgradeError    = "Unknown upgrade"
	ErrMsgUpgradeMaxedError      = "Upgrade is already at max level"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
)

// Success messages for API responses
const (
	MsgPlayerRegisteredSuccess = "Player registered successfully"
	MsgUpgradePurchasedSuccess = "Upgrade purchased successfully"
)
