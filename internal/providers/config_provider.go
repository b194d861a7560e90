package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"holidaze/internal/structures"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultSubmitDelay = 500 * time.Millisecond
	defaultApiTimeout  = 10 * time.Second
	defaultCacheTTL    = 60 * time.Second
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	v := viper.New()
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("store.driver", "memory")
	v.SetDefault("api.baseUrl", "https://v2.api.noroff.dev")
	v.SetDefault("api.timeout", defaultApiTimeout)
	v.SetDefault("ratings.submitDelay", defaultSubmitDelay)
	v.SetDefault("cache.ttl", defaultCacheTTL)

	v.BindEnv("logger.level", "HOLIDAZE_LOG_LEVEL")
	v.BindEnv("store.driver", "HOLIDAZE_STORE_DRIVER")
	v.BindEnv("store.redis.addr", "HOLIDAZE_REDIS_ADDR")
	v.BindEnv("api.apiKey", "HOLIDAZE_API_KEY")
	v.BindEnv("api.baseUrl", "HOLIDAZE_API_BASE_URL")
	v.BindEnv("cache.enabled", "HOLIDAZE_CACHE_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Store.Driver == "file" && conf.Store.FilePath == "" {
		return nil, fmt.Errorf("store.filePath is required for the file driver")
	}
	if conf.Store.Driver == "redis" && conf.Store.Redis.Addr == "" {
		return nil, fmt.Errorf("store.redis.addr is required for the redis driver")
	}

	conf.AppName = "Holidaze"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
