package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type AuthCfg struct {
	JwtSecret      string
	Issuer         string
	Audience       string
	LifetimeMin    int
	AllowedOrigins []string
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	// TTL of the cached catalog page and stage list, seconds.
	CatalogTTLSec int
}

type MQExchangeName struct {
	Moderation string
	Sprint     string
}

type MQRoutingKey struct {
	ProjectApproved string
	ProjectRejected string
	SprintBlocked   string
	SprintStarted   string
}

type MQCfg struct {
	URL          string
	Prefetch     int
	ExchangeName MQExchangeName
	RoutingKey   MQRoutingKey
}

type S3Cfg struct {
	Endpoint         string
	Region           string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UsePathStyle     bool
	PresignExpireSec int
	SSE              string
}

type OpsCfg struct {
	// Webhook that receives operational error alerts.
	WebhookURL string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type Config struct {
	App       AppCfg
	Auth      AuthCfg
	Log       LogCfg
	Database  DBCfg
	Redis     RedisCfg
	RabbitMQ  MQCfg
	S3        S3Cfg
	Ops       OpsCfg
	Telemetry TelemetryCfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP")

	setDefaults(base)

	if err := base.ReadInConfig(); err == nil {
		// Expand ${ENV} references in the file before parsing.
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix("APP")
		setDefaults(v)

		cfg := new(Config)
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// No config file: env + defaults only.
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "wirelance")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("auth.issuer", "wirelance")
	v.SetDefault("auth.audience", "wirelance-web")
	v.SetDefault("auth.lifetimeMin", 120)
	v.SetDefault("auth.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("redis.catalogTTLSec", 60)
	v.SetDefault("rabbitmq.prefetch", 10)
	v.SetDefault("rabbitmq.exchangeName.moderation", "project.moderation")
	v.SetDefault("rabbitmq.exchangeName.sprint", "sprint.events")
	v.SetDefault("rabbitmq.routingKey.projectApproved", "project.moderation.approved")
	v.SetDefault("rabbitmq.routingKey.projectRejected", "project.moderation.rejected")
	v.SetDefault("rabbitmq.routingKey.sprintBlocked", "sprint.start.blocked")
	v.SetDefault("rabbitmq.routingKey.sprintStarted", "sprint.start.ok")
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("s3.presignExpireSec", 900)
	v.SetDefault("telemetry.sampleRatio", 1.0)
}
