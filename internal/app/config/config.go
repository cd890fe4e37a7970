package config

import (
	"errors"
	"fmt"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

// Load reads configuration from an optional file named by APP_CONFIG_FILE and
// from the environment, environment first. Keys map to variables by
// upper-casing and replacing dots, so index.reload_cron_spec is read from
// INDEX_RELOAD_CRON_SPEC.
func Load() (*InternalConfig, *DriverConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := utils.GetEnvString("APP_CONFIG_FILE", ""); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	internalConfig := &InternalConfig{}
	if err := v.Unmarshal(internalConfig); err != nil {
		return nil, nil, fmt.Errorf("decode internal config: %w", err)
	}
	driverConfig := &DriverConfig{}
	if err := v.Unmarshal(driverConfig); err != nil {
		return nil, nil, fmt.Errorf("decode driver config: %w", err)
	}

	if err := validate(internalConfig, driverConfig); err != nil {
		return nil, nil, err
	}
	return internalConfig, driverConfig, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", constvars.AppEnvDevelopment)
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.version", "v1")
	v.SetDefault("app.address", "")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.endpoint_prefix", "api")
	v.SetDefault("app.cors_allowed_origins", []string{"*"})
	v.SetDefault("app.max_requests", 100)
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)
	v.SetDefault("app.request_timeout_in_seconds", 10)
	v.SetDefault("app.superadmin_api_key", "")
	v.SetDefault("app.reload_rate_limit", 2)
	v.SetDefault("app.reload_rate_limit_period_in_seconds", 60)
	v.SetDefault("app.reload_rate_limit_block_in_seconds", 300)

	v.SetDefault("index.source", constvars.IndexSourceCSV)
	v.SetDefault("index.csv_path", "data/restaurants.csv")
	v.SetDefault("index.strict", false)
	v.SetDefault("index.warm_start", false)
	v.SetDefault("index.reload_cron_spec", "@every 15m")
	v.SetDefault("index.reload_queue", "openhours_index_reload")
	v.SetDefault("index.reload_timeout_in_seconds", 60)
	v.SetDefault("index.leader_lock_ttl_in_seconds", 120)
	v.SetDefault("index.snapshot_ttl_in_minutes", 0)
	v.SetDefault("index.archive_snapshots", false)
	v.SetDefault("index.snapshot_store_timeout_in_seconds", 10)

	v.SetDefault("minio.bucket_name", "openhours")
	v.SetDefault("minio.source_object_name", "restaurants.csv")
	v.SetDefault("mongodb.db_name", "openhours")
	v.SetDefault("rabbitmq.prefetch_count", 1)

	v.SetDefault("mongodb.host", "localhost")
	v.SetDefault("mongodb.port", "27017")
	v.SetDefault("mongodb.username", "")
	v.SetDefault("mongodb.password", "")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_filename", "logger.log")
	v.SetDefault("logger.output_error_filename", "logger_error.log")

	v.SetDefault("rabbitmq.enabled", false)
	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", "5672")
	v.SetDefault("rabbitmq.username", "guest")
	v.SetDefault("rabbitmq.password", "guest")

	v.SetDefault("minio.enabled", false)
	v.SetDefault("minio.host", "localhost")
	v.SetDefault("minio.port", "9000")
	v.SetDefault("minio.username", "")
	v.SetDefault("minio.password", "")
	v.SetDefault("minio.use_ssl", false)
}

func validate(internalConfig *InternalConfig, driverConfig *DriverConfig) error {
	if err := utils.ValidateStruct(internalConfig); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if internalConfig.Index.Source == constvars.IndexSourceMinio && !driverConfig.Minio.Enabled {
		return errors.New("invalid config: index source minio requires MINIO_ENABLED=true")
	}
	if internalConfig.Index.ArchiveSnapshots && !driverConfig.Minio.Enabled {
		return errors.New("invalid config: INDEX_ARCHIVE_SNAPSHOTS requires MINIO_ENABLED=true")
	}
	if internalConfig.Index.WarmStart && !driverConfig.Redis.Enabled && !internalConfig.Index.ArchiveSnapshots {
		return errors.New("invalid config: INDEX_WARM_START requires REDIS_ENABLED=true or INDEX_ARCHIVE_SNAPSHOTS=true")
	}
	return nil
}
