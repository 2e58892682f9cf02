package config

import (
	"carhire/pkg/client"
	"carhire/pkg/logger"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
	_ "time/tzdata"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout       time.Duration
	IdempotencyTTL       time.Duration
	MaxRequestSize       int
	UploadMaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	StorageProvider    string
	StorageLocalPath   string
	StorageLocalURL    string
	S3Region           string
	S3Bucket           string
	CloudFrontDomain   string
	GCPProjectID       string
	GCPBucket          string
	GCPCredentialsFile string
	GCPCDNDomain       string

	UploadMaxFileSize int64
	UploadMaxFiles    int
	ImageMaxWidth     int
	ImageMaxHeight    int
	ImageJPEGQuality  int

	AdminJWTSecret    string
	AdminPasswordHash string
	AdminSessionTTL   time.Duration

	BusinessTimezone string
	BusinessLocation *time.Location
	PhoneRegion      string

	KafkaEnabled bool
	MetricsPath  string

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout:       getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL:       getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize:       getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),
		UploadMaxRequestSize: getEnvNum(EnvUploadMaxRequestSize, DefaultUploadMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		RedisAddr:     getEnvStr(EnvRedisAddr, ""),
		RedisPassword: getEnvStr(EnvRedisPassword, ""),
		RedisDB:       getEnvNum(EnvRedisDB, DefaultRedisDB),
		CacheTTL:      getEnvDuration(EnvCacheTTL, DefaultCacheTTL),

		StorageProvider:    getEnvStr(EnvStorageProvider, DefaultStorageProvider),
		StorageLocalPath:   getEnvStr(EnvStorageLocalPath, DefaultStorageLocalPath),
		StorageLocalURL:    getEnvStr(EnvStorageLocalURL, DefaultStorageLocalURL),
		S3Region:           getEnvStr(EnvS3Region, ""),
		S3Bucket:           getEnvStr(EnvS3Bucket, ""),
		CloudFrontDomain:   getEnvStr(EnvCloudFrontDomain, ""),
		GCPProjectID:       getEnvStr(EnvGCPProjectID, ""),
		GCPBucket:          getEnvStr(EnvGCPBucket, ""),
		GCPCredentialsFile: getEnvStr(EnvGCPCredentialsFile, ""),
		GCPCDNDomain:       getEnvStr(EnvGCPCDNDomain, ""),

		UploadMaxFileSize: getEnvInt64(EnvUploadMaxFileSize, DefaultUploadMaxFileSize),
		UploadMaxFiles:    getEnvNum(EnvUploadMaxFiles, DefaultUploadMaxFiles),
		ImageMaxWidth:     getEnvNum(EnvImageMaxWidth, DefaultImageMaxWidth),
		ImageMaxHeight:    getEnvNum(EnvImageMaxHeight, DefaultImageMaxHeight),
		ImageJPEGQuality:  getEnvNum(EnvImageJPEGQuality, DefaultImageJPEGQuality),

		AdminJWTSecret:    getEnvStr(EnvAdminJWTSecret, ""),
		AdminPasswordHash: getEnvStr(EnvAdminPasswordHash, ""),
		AdminSessionTTL:   getEnvDuration(EnvAdminSessionTTL, DefaultAdminSessionTTL),

		BusinessTimezone: getEnvStr(EnvBusinessTimezone, DefaultBusinessTimezone),
		PhoneRegion:      getEnvStr(EnvPhoneRegion, DefaultPhoneRegion),

		KafkaEnabled: getEnvBool(EnvKafkaEnabled, DefaultKafkaEnabled),
		MetricsPath:  getEnvStr(EnvMetricsPath, DefaultMetricsPath),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	err := cfg.Validate()
	if err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

// SetRedis connects the shared Redis client when REDIS_ADDR is set.
// A failed connection leaves the client nil and callers fall back to no caching.
func (cfg *Config) SetRedis() {
	if cfg.RedisAddr == "" {
		cfg.Log.Info("Redis address not configured, caching disabled")
		return
	}
	cfg.Client.SetRedis(cfg.Log, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}

	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}

	if cfg.MongoConnTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.CacheTTL <= 0 {
		errors = append(errors, fmt.Sprintf("CacheTTL must be positive, got: %s", cfg.CacheTTL))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.UploadMaxRequestSize < cfg.MaxRequestSize {
		errors = append(errors, fmt.Sprintf("UploadMaxRequestSize (%d) must be >= MaxRequestSize (%d)", cfg.UploadMaxRequestSize, cfg.MaxRequestSize))
	}

	switch cfg.StorageProvider {
	case StorageLocal:
		if cfg.StorageLocalPath == "" {
			errors = append(errors, "StorageLocalPath cannot be empty when STORAGE_PROVIDER=local")
		}
	case StorageS3:
		if cfg.S3Region == "" || cfg.S3Bucket == "" {
			errors = append(errors, "AWS_S3_REGION and AWS_S3_BUCKET are required when STORAGE_PROVIDER=s3")
		}
	case StorageGCS:
		if cfg.GCPBucket == "" {
			errors = append(errors, "GCP_STORAGE_BUCKET is required when STORAGE_PROVIDER=gcs")
		}
	default:
		errors = append(errors, fmt.Sprintf("StorageProvider must be one of [local, s3, gcs], got: %s", cfg.StorageProvider))
	}

	if cfg.UploadMaxFileSize <= 0 {
		errors = append(errors, fmt.Sprintf("UploadMaxFileSize must be positive, got: %d", cfg.UploadMaxFileSize))
	}
	if cfg.UploadMaxFiles <= 0 {
		errors = append(errors, fmt.Sprintf("UploadMaxFiles must be positive, got: %d", cfg.UploadMaxFiles))
	}
	if cfg.ImageMaxWidth <= 0 || cfg.ImageMaxHeight <= 0 {
		errors = append(errors, fmt.Sprintf("Image max dimensions must be positive, got: %dx%d", cfg.ImageMaxWidth, cfg.ImageMaxHeight))
	}
	if cfg.ImageJPEGQuality < 1 || cfg.ImageJPEGQuality > 100 {
		errors = append(errors, fmt.Sprintf("ImageJPEGQuality must be between 1 and 100, got: %d", cfg.ImageJPEGQuality))
	}

	if cfg.AdminJWTSecret != "" && len(cfg.AdminJWTSecret) < MinAdminJWTSecretLen {
		errors = append(errors, fmt.Sprintf("AdminJWTSecret must be at least %d characters", MinAdminJWTSecretLen))
	}
	if cfg.AdminSessionTTL <= 0 {
		errors = append(errors, fmt.Sprintf("AdminSessionTTL must be positive, got: %s", cfg.AdminSessionTTL))
	}

	loc, err := time.LoadLocation(cfg.BusinessTimezone)
	if err != nil {
		errors = append(errors, fmt.Sprintf("BusinessTimezone must be a valid IANA timezone, got: %s", cfg.BusinessTimezone))
	} else {
		cfg.BusinessLocation = loc
	}

	if cfg.MetricsPath == "" || cfg.MetricsPath[0] != '/' {
		errors = append(errors, fmt.Sprintf("MetricsPath must start with '/', got: %s", cfg.MetricsPath))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"upload_max_request_size", cfg.UploadMaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"redis_addr", cfg.RedisAddr,
		"redis_password_set", cfg.RedisPassword != "",
		"cache_ttl", cfg.CacheTTL,
		"storage_provider", cfg.StorageProvider,
		"upload_max_file_size", cfg.UploadMaxFileSize,
		"upload_max_files", cfg.UploadMaxFiles,
		"image_max_width", cfg.ImageMaxWidth,
		"image_max_height", cfg.ImageMaxHeight,
		"admin_jwt_secret_set", cfg.AdminJWTSecret != "",
		"admin_password_hash_set", cfg.AdminPasswordHash != "",
		"admin_session_ttl", cfg.AdminSessionTTL,
		"business_timezone", cfg.BusinessTimezone,
		"phone_region", cfg.PhoneRegion,
		"kafka_enabled", cfg.KafkaEnabled,
		"metrics_path", cfg.MetricsPath,
	)
}

// Today returns the current calendar date in the business timezone as YYYY-MM-DD.
func (cfg *Config) Today() string {
	loc := cfg.BusinessLocation
	if loc == nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format(time.DateOnly)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		limit = DefaultPageSize
	} else if limit > DefaultPaginationLimit {
		limit = DefaultPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
