package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Index    AppIndex    `mapstructure:"index"`
	Minio    AppMinio    `mapstructure:"minio"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                      string   `mapstructure:"env"`
	Port                     string   `mapstructure:"port"`
	Version                  string   `mapstructure:"version"`
	Address                  string   `mapstructure:"address"`
	Timezone                 string   `mapstructure:"timezone" validate:"required"`
	EndpointPrefix           string   `mapstructure:"endpoint_prefix"`
	CORSAllowedOrigins       []string `mapstructure:"cors_allowed_origins"`
	MaxRequests              int      `mapstructure:"max_requests" validate:"gte=1"`
	ShutdownTimeoutInSeconds int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds  int      `mapstructure:"request_timeout_in_seconds" validate:"gte=1"`
	SuperadminAPIKey         string   `mapstructure:"superadmin_api_key"`
	// ReloadRateLimit is how many manual reloads one client may trigger per
	// ReloadRateLimitPeriodInSeconds before being blocked.
	ReloadRateLimit                int `mapstructure:"reload_rate_limit" validate:"gte=1"`
	ReloadRateLimitPeriodInSeconds int `mapstructure:"reload_rate_limit_period_in_seconds" validate:"gte=1"`
	ReloadRateLimitBlockInSeconds  int `mapstructure:"reload_rate_limit_block_in_seconds"`
}

type AppIndex struct {
	// Source selects where business records are read from: csv, minio or mongo.
	Source  string `mapstructure:"source" validate:"oneof=csv minio mongo"`
	CSVPath string `mapstructure:"csv_path"`
	// Strict aborts a reload on the first record that fails to parse instead
	// of skipping it.
	Strict    bool `mapstructure:"strict"`
	WarmStart bool `mapstructure:"warm_start"`
	// ReloadCronSpec schedules periodic reloads (e.g., "@every 15m"). Empty disables them.
	ReloadCronSpec                string `mapstructure:"reload_cron_spec"`
	ReloadQueue                   string `mapstructure:"reload_queue"`
	ReloadTimeoutInSeconds        int    `mapstructure:"reload_timeout_in_seconds" validate:"gte=1"`
	LeaderLockTTLInSeconds        int    `mapstructure:"leader_lock_ttl_in_seconds" validate:"gte=1"`
	SnapshotTTLInMinutes          int    `mapstructure:"snapshot_ttl_in_minutes"`
	ArchiveSnapshots              bool   `mapstructure:"archive_snapshots"`
	SnapshotStoreTimeoutInSeconds int    `mapstructure:"snapshot_store_timeout_in_seconds"`
}

type AppMinio struct {
	BucketName string `mapstructure:"bucket_name"`
	// SourceObjectName is the CSV object read when the index source is minio.
	SourceObjectName string `mapstructure:"source_object_name"`
}

type AppMongoDB struct {
	DBName string `mapstructure:"db_name"`
}

type AppRabbitMQ struct {
	PrefetchCount int `mapstructure:"prefetch_count"`
}
