package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyLogifyDBType string = "LOGIFY_DB_TYPE"
	EnvKeyLogifyDbPath string = "LOGIFY_DB_PATH"

	EnvKeyLogifyHttpHostPort string = "LOGIFY_HTTP_HOST_PORT"
	EnvKeyLogifyGrpcHostPort string = "LOGIFY_GRPC_HOST_PORT"

	EnvKeyLogifyDefaultRate  string = "LOGIFY_DEFAULT_RATE"
	EnvKeyLogifyDefaultBurst string = "LOGIFY_DEFAULT_BURST"

	EnvKeyLogifyJwtSecret     string = "LOGIFY_JWT_SECRET"
	EnvKeyLogifyJwtTTLMinutes string = "LOGIFY_JWT_TTL_MINUTES"
	EnvKeyLogifyBcryptCost    string = "LOGIFY_BCRYPT_COST"

	EnvKeyLogifyUploadBackend string = "LOGIFY_UPLOAD_BACKEND"
	EnvKeyLogifyUploadDir     string = "LOGIFY_UPLOAD_DIR"
	EnvKeyLogifyGcsBucket     string = "LOGIFY_GCS_BUCKET"

	EnvKeyLogifyLogDir       string = "LOGIFY_LOG_DIR"
	EnvKeyLogifyLogMaxSizeMB string = "LOGIFY_LOG_MAX_SIZE_MB"

	LoggerNameLogifyCore    string = "logify_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameAuth          string = "auth"
	LoggerNameUpload        string = "upload"

	LoggerFieldLogifyCategory  string = "category"
	LoggerCategoryLogifyTicket string = "ticket"
	LoggerCategoryLogifyUser   string = "user"
	LoggerCategoryLogifyAudit  string = "audit"
	LoggerCategoryLogifyMeter  string = "meter"
)
