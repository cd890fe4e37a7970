package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Business messages
	GetOpenBusinessesSuccessMessage = "get open businesses successfully"

	// Index messages
	GetIndexSnapshotSuccessMessage = "get index snapshot successfully"
	ReloadIndexSuccessMessage      = "index reloaded successfully"
	ReloadIndexQueuedMessage       = "index reload queued"
	HealthyMessage                 = "service is healthy"
)
