package constants

const (
	ViperServerAddrKey       = "server.addr"
	ViperCORSOriginsKey      = "server.cors_origins"
	ViperLogLevelKey         = "log.level"
	ViperSecretKey           = "auth.secret"
	ViperDatasetSourceKey    = "dataset.source"
	ViperRecordsPathKey      = "dataset.records_path"
	ViperGeometryPathKey     = "dataset.geometry_path"
	ViperDemographicsPathKey = "dataset.demographics_path"
	ViperGeometryKeyKey      = "dataset.geometry_key"
	ViperPostgresDSNKey      = "postgres.dsn"
	ViperSessionBackendKey   = "session.backend"
	ViperSessionTTLKey       = "session.ttl"
	ViperRedisAddrKey        = "redis.addr"
	ViperRedisPasswordKey    = "redis.password"
	ViperRedisDBKey          = "redis.db"
)

const (
	CookieKeySessionToken = "session_token"
	CtxKeySessionID       = "session_id"
)

const (
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)
