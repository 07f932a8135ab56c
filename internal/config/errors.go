package config

// Messages shown to the author through toasts.
const (
	MsgEditSuccess      = "Edited success!"
	MsgCantEdit         = "Can't Edit!"
	MsgEditFailed       = "Cannot edit article!"
	MsgServerError      = "Server error!"
	MsgRequiredFieldFmt = "%s is required"
	MsgUnknownCategory  = "Unknown category"
)

const (
	ErrLoadConfigFmt   = "Failed to load config: %v"
	ErrRenderPageFmt   = "Failed to render page: %v"
	ErrSessionNotFound = "edit session not found"
)
