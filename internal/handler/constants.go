package handler

// Generic HTTP error messages for client responses.
// These do not expose internal error details; tests reference them too.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgPlayerNotFound     = "Player not found"
	ErrMsgUnknownSkillError  = "Unknown skill"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
)

// Success messages
const (
	MsgPlayerUnloaded = "Player unloaded"
	MsgPlayerRemoved  = "Player removed"
)

// Path and query parameter names
const (
	PathParamPlayerID = "playerID"
	QueryParamLimit   = "limit"
	QueryParamLevels  = "levels"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgStoreUnavailable     = "store connection failed"
)
