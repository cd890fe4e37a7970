package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingOperationKey  = "operation"

	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"

	LoggingBucketNameKey = "bucket_name"
	LoggingObjectNameKey = "object_name"
	LoggingQueueNameKey  = "queue_name"
	LoggingCronSpecKey   = "cron_spec"
	LoggingSourceKey     = "source"
	LoggingFilePathKey   = "file_path"

	LoggingBusinessNameKey      = "business_name"
	LoggingBusinessHoursKey     = "business_hours"
	LoggingBusinessCountKey     = "business_count"
	LoggingOpenBusinessCountKey = "open_business_count"
	LoggingFailureCountKey      = "failure_count"
	LoggingIndexEntriesKey      = "index_entries"
	LoggingIndexBuiltAtKey      = "index_built_at"
	LoggingQueryTimeKey         = "query_time"
)
