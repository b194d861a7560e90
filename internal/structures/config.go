package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type StoreConfig struct {
	Driver       string        `yaml:"driver" validate:"required|in:memory,file,redis"`
	FilePath     string        `yaml:"filePath"`
	SaveInterval time.Duration `yaml:"saveInterval"`
	QuotaBytes   int           `yaml:"quotaBytes"`
	Redis        RedisConfig   `yaml:"redis"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type ApiConfig struct {
	BaseUrl string        `yaml:"baseUrl" validate:"required|url"`
	ApiKey  string        `yaml:"apiKey"`
	Timeout time.Duration `yaml:"timeout"`
}

type RatingsConfig struct {
	SubmitDelay time.Duration `yaml:"submitDelay"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Logger    LoggerConfig  `yaml:"logger"`
	Store     StoreConfig   `yaml:"store"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Api       ApiConfig     `yaml:"api"`
	Ratings   RatingsConfig `yaml:"ratings"`
}
