package config

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Format string `mapstructure:"format"` // text или json
}

// ConfigServer настройки сервера
type ConfigServer struct {
	UseReflection           bool `mapstructure:"use_reflection"`
	PortGRPC                int  `mapstructure:"port_grpc"`
	PortHTTP                int  `mapstructure:"port_http"`
	HTTPReadTimeout         int  `mapstructure:"http_read_timeout"`
	HTTPWriteTimeout        int  `mapstructure:"http_write_timeout"`
	HTTPIdleTimeout         int  `mapstructure:"http_idle_timeout"`
	HTTPReadHeaderTimeout   int  `mapstructure:"http_read_header_timeout"`
	GracefulShutdownTimeout int  `mapstructure:"graceful_shutdown_timeout"`
	MaxConcurrentStreams    int  `mapstructure:"max_concurrent_streams"`
	HeartbeatInterval       int  `mapstructure:"heartbeat_interval"` // секунды
}

// ConfigGateway настройки HTTP Gateway
type ConfigGateway struct {
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
	CORSMaxAge         int    `mapstructure:"cors_max_age"`
	RateLimitRPS       int    `mapstructure:"rate_limit_rps"`
	RateLimitBurst     int    `mapstructure:"rate_limit_burst"`
}

// ConfigSwagger настройки отдачи OpenAPI спецификации
type ConfigSwagger struct {
	Enabled bool `mapstructure:"enabled"`
}

// ConfigStorage настройки хранилища
type ConfigStorage struct {
	Driver string `mapstructure:"driver"` // memory или sqlite
	DSN    string `mapstructure:"dsn"`    // путь к файлу sqlite
}

// ConfigAuth настройки сессий
type ConfigAuth struct {
	SessionTTLHours int `mapstructure:"session_ttl_hours"`
}

// ConfigApp настройки предметной области
type ConfigApp struct {
	DefaultTimezone string `mapstructure:"default_timezone"` // IANA, пусто = пояс сервера
}

// Config основная структура конфигурации
type Config struct {
	Logger  *ConfigLogger  `mapstructure:"logger"`
	Server  *ConfigServer  `mapstructure:"server"`
	Gateway *ConfigGateway `mapstructure:"gateway"`
	Swagger *ConfigSwagger `mapstructure:"swagger"`
	Storage *ConfigStorage `mapstructure:"storage"`
	Auth    *ConfigAuth    `mapstructure:"auth"`
	App     *ConfigApp     `mapstructure:"app"`
}
