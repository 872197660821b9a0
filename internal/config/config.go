package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Postgres DBConfig
	Redis    RedisConfig
	S3       S3Config
	GhostCut GhostCutConfig
	Cookie   Cookie
	Logger   Logger
	Worker   WorkerConfig
	Tiers    map[string]int
}

type ServerConfig struct {
	AppVersion   string
	Port         string
	Mode         string
	JwtSecretKey string
}

type WorkerConfig struct {
	WorkerCount int
	MaxCPUUsage float64
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	PgDriver string
}

type Cookie struct {
	Name     string
	MaxAge   int
	Secure   bool
	HTTPOnly bool
}

type RedisConfig struct {
	RedisAddr     string
	RedisPassword string
	DB            int
	MinIdleConns  int
	PoolSize      int
	PoolTimeout   int
	JobQueueKey   string
	ProgressKey   string
}

type S3Config struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	InputBucket  string
	OutputBucket string
}

// GhostCutConfig holds credentials and tuning knobs for the remote
// video-inpainting API. PollInterval and RequestTimeout are seconds.
type GhostCutConfig struct {
	BaseURL        string
	AppKey         string
	AppSecret      string
	SuccessCode    int
	PollInterval   int
	RequestTimeout int
}

func (g GhostCutConfig) PollIntervalDuration() time.Duration {
	if g.PollInterval <= 0 {
		return 10 * time.Second
	}
	return time.Duration(g.PollInterval) * time.Second
}

func (g GhostCutConfig) RequestTimeoutDuration() time.Duration {
	if g.RequestTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(g.RequestTimeout) * time.Second
}

type Logger struct {
	Development       bool
	DisableCaller     bool
	DisableStacktrace bool
	Encoding          string
	Level             string
}

// MaxSegmentsForTier resolves the per-request segment limit for a
// subscription tier, falling back to the free tier when unknown.
func (c *Config) MaxSegmentsForTier(tier string) int {
	if limit, ok := c.Tiers[tier]; ok && limit > 0 {
		return limit
	}
	if limit, ok := c.Tiers["free"]; ok && limit > 0 {
		return limit
	}
	return 3
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.AddConfigPath(".")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFound) {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
