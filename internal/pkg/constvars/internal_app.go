package constvars

type ContextKey string

const (
	ResourceBusinesses  = "businesses"
	ResourceRestaurants = "restaurants"
	ResourceIndex       = "index"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "OPNHRS_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

// Where the business records of a reload are read from.
const (
	IndexSourceCSV   = "csv"
	IndexSourceMinio = "minio"
	IndexSourceMongo = "mongo"
)

const (
	RedisKeyIndexSnapshot   = "openhours:index:snapshot"
	RedisKeyIndexLeaderLock = "openhours:index:leader"
)

const (
	MinioSnapshotObjectPrefix = "snapshots/"
	MinioSnapshotObjectFormat = "snapshots/index-%d.json"
	MinioSnapshotLatestObject = "snapshots/index-latest.json"
)

const (
	MongoCollectionBusinesses = "businesses"
)

const (
	QueryParamTime = "time"
)

const (
	TimeLayoutQuery = "2006-01-02T15:04:05Z07:00"
)

// What started an index reload; also the trigger label of reload metrics.
const (
	ReloadTriggerStartup = "startup"
	ReloadTriggerCron    = "cron"
	ReloadTriggerQueue   = "queue"
	ReloadTriggerHTTP    = "http"
	ReloadTriggerCLI     = "cli"
)

const (
	ReloadConsumerTag = "openhours-reload-consumer"
)

const (
	QueryParamAsync = "async"
)
