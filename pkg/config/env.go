package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout       = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL       = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize       = "MAX_REQUEST_SIZE"
	EnvUploadMaxRequestSize = "UPLOAD_MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"
	EnvCacheTTL      = "CACHE_TTL"

	EnvStorageProvider    = "STORAGE_PROVIDER"
	EnvStorageLocalPath   = "STORAGE_LOCAL_PATH"
	EnvStorageLocalURL    = "STORAGE_LOCAL_URL"
	EnvS3Region           = "AWS_S3_REGION"
	EnvS3Bucket           = "AWS_S3_BUCKET"
	EnvCloudFrontDomain   = "AWS_CLOUDFRONT_DOMAIN"
	EnvGCPProjectID       = "GCP_PROJECT_ID"
	EnvGCPBucket          = "GCP_STORAGE_BUCKET"
	EnvGCPCredentialsFile = "GCP_CREDENTIALS_FILE"
	EnvGCPCDNDomain       = "GCP_CDN_DOMAIN"

	EnvUploadMaxFileSize = "UPLOAD_MAX_FILE_SIZE"
	EnvUploadMaxFiles    = "UPLOAD_MAX_FILES"
	EnvImageMaxWidth     = "IMAGE_MAX_WIDTH"
	EnvImageMaxHeight    = "IMAGE_MAX_HEIGHT"
	EnvImageJPEGQuality  = "IMAGE_JPEG_QUALITY"

	EnvAdminJWTSecret    = "ADMIN_JWT_SECRET"
	EnvAdminPasswordHash = "ADMIN_PASSWORD_HASH"
	EnvAdminSessionTTL   = "ADMIN_SESSION_TTL"

	EnvBusinessTimezone = "BUSINESS_TIMEZONE"
	EnvPhoneRegion      = "DEFAULT_PHONE_REGION"

	EnvKafkaEnabled = "KAFKA_ENABLED"
	EnvMetricsPath  = "METRICS_PATH"
)
