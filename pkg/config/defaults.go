package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "carhire"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout       = 30 * time.Second
	DefaultIdempotencyTTL       = 24 * time.Hour
	DefaultMaxRequestSize       = 1 * 1024 * 1024  // 1MB
	DefaultUploadMaxRequestSize = 60 * 1024 * 1024 // 10 files of 5MB plus multipart overhead

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultRedisDB  = 0
	DefaultCacheTTL = 5 * time.Minute

	StorageLocal = "local"
	StorageS3    = "s3"
	StorageGCS   = "gcs"

	DefaultStorageProvider  = StorageLocal
	DefaultStorageLocalPath = "./uploads"
	DefaultStorageLocalURL  = "/uploads"

	DefaultUploadMaxFileSize = 5 * 1024 * 1024 // 5MB
	DefaultUploadMaxFiles    = 10
	DefaultImageMaxWidth     = 1920
	DefaultImageMaxHeight    = 1080
	DefaultImageJPEGQuality  = 85

	DefaultAdminSessionTTL = 8 * time.Hour
	MinAdminJWTSecretLen   = 32

	DefaultBusinessTimezone = "Australia/Sydney"
	DefaultPhoneRegion      = "AU"

	DefaultKafkaEnabled = false
	DefaultMetricsPath  = "/metrics"

	DefaultPageSize        = 10
	DefaultPaginationLimit = 100
)
