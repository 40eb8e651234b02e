package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPattern формат ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults расширяет переменные окружения с поддержкой дефолтных значений
func expandEnvWithDefaults(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		matches := envPattern.FindStringSubmatch(match)
		if len(matches) < 2 {
			return match
		}

		varName := matches[1]
		defaultValue := ""
		if len(matches) > 2 {
			defaultValue = matches[2]
		}

		// Если переменная не установлена, используем значение по умолчанию
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return defaultValue
	})
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(strings.TrimLeft(filepath.Ext(configFile), "."))
	return v
}

// decode подставляет переменные окружения и разбирает конфиг в C
func decode[C any](v *viper.Viper) (*C, error) {
	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if value == "" {
			continue
		}
		expanded := expandEnvWithDefaults(value)

		// Если значение выглядит как число или boolean, сохраняем его с типом
		if expanded == "true" || expanded == "false" {
			boolValue, _ := strconv.ParseBool(expanded)
			v.Set(k, boolValue)
		} else if intValue, err := strconv.Atoi(expanded); err == nil {
			v.Set(k, intValue)
		} else {
			v.Set(k, expanded)
		}
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}
	if d, ok := any(cfg).(interface{ applyDefaults() }); ok {
		d.applyDefaults()
	}

	return cfg, nil
}

// InitConfig читает конфигурационный файл и возвращает экземпляр конфигурации
// Использует generic для работы с произвольным типом конфигурации
func InitConfig[C any](configFile string) (*C, error) {
	v := newViper(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig: %w", err)
	}
	return decode[C](v)
}

// Watch следит за файлом конфигурации и вызывает onChange с перечитанным
// конфигом после каждого изменения. Ошибки разбора передаются в onError,
// предыдущий конфиг при этом остается в силе.
func Watch[C any](configFile string, onChange func(*C), onError func(error)) error {
	v := newViper(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("v.ReadInConfig: %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		fresh := newViper(configFile)
		if err := fresh.ReadInConfig(); err != nil {
			onError(fmt.Errorf("reload %s: %w", e.Name, err))
			return
		}
		cfg, err := decode[C](fresh)
		if err != nil {
			onError(fmt.Errorf("reload %s: %w", e.Name, err))
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()

	return nil
}

// applyDefaults заполняет отсутствующие секции и нулевые значения
func (c *Config) applyDefaults() {
	if c.Logger == nil {
		c.Logger = &ConfigLogger{}
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "text"
	}

	if c.Server == nil {
		c.Server = &ConfigServer{}
	}
	if c.Server.PortGRPC == 0 {
		c.Server.PortGRPC = 50051
	}
	if c.Server.PortHTTP == 0 {
		c.Server.PortHTTP = 8080
	}
	if c.Server.GracefulShutdownTimeout == 0 {
		c.Server.GracefulShutdownTimeout = 10
	}
	if c.Server.MaxConcurrentStreams == 0 {
		c.Server.MaxConcurrentStreams = 25
	}
	if c.Server.HeartbeatInterval == 0 {
		c.Server.HeartbeatInterval = 30
	}

	if c.Gateway == nil {
		c.Gateway = &ConfigGateway{}
	}
	if c.Swagger == nil {
		c.Swagger = &ConfigSwagger{}
	}

	if c.Storage == nil {
		c.Storage = &ConfigStorage{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}

	if c.Auth == nil {
		c.Auth = &ConfigAuth{}
	}
	if c.Auth.SessionTTLHours == 0 {
		c.Auth.SessionTTLHours = 24
	}

	if c.App == nil {
		c.App = &ConfigApp{}
	}
}
