package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"datetime": "must be a date time in the format %s",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"boolean":  "must be true or false",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"datetime": true,
	"min":      true,
	"max":      true,
	"oneof":    true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientIndexNotReady                 = "opening hours are still being loaded, please try again shortly"
	ErrClientReloadInProgress              = "a reload is already in progress"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
	ErrClientReloadQueueDisabled           = "asynchronous reloads are not available"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCannotParseTime           = "cannot parse time"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevIndexNotReady             = "index has not been loaded yet"
	ErrDevReloadInProgress          = "index reload already running"
	ErrDevUnknownIndexSource        = "unknown index source %q"
	ErrDevInvalidBusinessRecord     = "invalid business record %q"
	ErrDevCannotParseBusinessHours  = "cannot parse hours of business %q"
	ErrDevCSVReadRecords            = "failed to read csv records from %s"
	ErrDevDBFailedToFindDocument    = "failed to find document"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisSetData              = "failed to set data in redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevRedisExpire               = "failed to set expiry in redis"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMinioFailedToGetObject    = "failed to get object from bucket %s"
	ErrDevRabbitMQConsume           = "failed to consume from queue %s"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevReloadQueueDisabled       = "rabbitmq is disabled, no reload queue to publish to"
)
