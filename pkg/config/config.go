package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/betbot/exrest/rest/types"
)

// 默认值
const (
	DefaultExchange       = "kraken"
	DefaultTimeoutSeconds = 30
	DefaultLogLevel       = "info"
	DefaultSecretDB       = "data/secrets.badger"
	DefaultSecretPrefix   = "env/"
)

// 已支持的交易所
var knownExchanges = map[string]bool{
	"kraken":  true,
	"deribit": true,
}

// SecretsConfig 凭证存储配置（badger）
// 加密密钥不在配置文件中，只从环境变量 EXREST_SECRET_KEY 读取。
type SecretsConfig struct {
	BadgerPath string
	Prefix     string
}

// Config 应用配置
type Config struct {
	Exchange       string // kraken / deribit
	BaseURL        string // 为空时使用交易所默认值
	Version        string // 为空时使用交易所默认值
	TimeoutSeconds int
	Proxy          string // 例如 http://127.0.0.1:15236
	LogLevel       string
	LogFile        string // 为空时只输出到 stderr
	Secrets        SecretsConfig
}

var globalConfig *Config
var configFilePath string

// SetConfigPath 设置配置文件路径
func SetConfigPath(path string) {
	configFilePath = path
}

// GetConfigPath 获取配置文件路径
func GetConfigPath() string {
	return configFilePath
}

// ConfigFile 配置文件结构（用于 YAML/JSON 解析）
type ConfigFile struct {
	Exchange       string `yaml:"exchange" json:"exchange"`
	BaseURL        string `yaml:"base_url" json:"base_url"`
	Version        string `yaml:"version" json:"version"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	Proxy          string `yaml:"proxy" json:"proxy"`
	LogLevel       string `yaml:"log_level" json:"log_level"`
	LogFile        string `yaml:"log_file" json:"log_file"`
	Secrets        struct {
		BadgerPath string `yaml:"badger_path" json:"badger_path"`
		Prefix     string `yaml:"prefix" json:"prefix"`
	} `yaml:"secrets" json:"secrets"`
}

// Load 加载配置
func Load() (*Config, error) {
	return LoadFromFile(configFilePath)
}

// LoadFromFile 从指定文件加载配置
// 优先级：环境变量 > 配置文件 > 默认值；filePath 为空时只读环境变量。
func LoadFromFile(filePath string) (*Config, error) {
	cf := &ConfigFile{}
	if filePath != "" {
		var err error
		cf, err = loadConfigFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("加载配置文件失败 %s: %w", filePath, err)
		}
	}

	config := &Config{
		Exchange:       strings.ToLower(getEnv("EXREST_EXCHANGE", orDefault(cf.Exchange, DefaultExchange))),
		BaseURL:        getEnv("EXREST_BASE_URL", cf.BaseURL),
		Version:        getEnv("EXREST_VERSION", cf.Version),
		TimeoutSeconds: parseIntEnv("EXREST_TIMEOUT_SECONDS", orDefaultInt(cf.TimeoutSeconds, DefaultTimeoutSeconds)),
		Proxy:          getEnv("EXREST_PROXY", cf.Proxy),
		LogLevel:       getEnv("LOG_LEVEL", orDefault(cf.LogLevel, DefaultLogLevel)),
		LogFile:        getEnv("LOG_FILE", cf.LogFile),
		Secrets: SecretsConfig{
			BadgerPath: getEnv("EXREST_SECRET_DB", orDefault(cf.Secrets.BadgerPath, DefaultSecretDB)),
			Prefix:     getEnv("EXREST_SECRET_PREFIX", orDefault(cf.Secrets.Prefix, DefaultSecretPrefix)),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	globalConfig = config
	configFilePath = filePath
	return config, nil
}

// loadConfigFile 加载配置文件（支持 YAML 和 JSON）
func loadConfigFile(filePath string) (*ConfigFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var configFile ConfigFile
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &configFile); err != nil {
			return nil, fmt.Errorf("解析 YAML 配置文件失败: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &configFile); err != nil {
			return nil, fmt.Errorf("解析 JSON 配置文件失败: %w", err)
		}
	default:
		return nil, fmt.Errorf("不支持的配置文件格式: %s (支持 .yaml, .yml, .json)", ext)
	}

	return &configFile, nil
}

// Get 返回最近一次加载的配置
func Get() *Config {
	return globalConfig
}

// Timeout 单次请求超时
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ApiParams 用配置中的 base_url / version 覆盖交易所默认参数
func (c *Config) ApiParams(defaults types.ApiParams) types.ApiParams {
	p := defaults
	if c.BaseURL != "" {
		p.BaseURL = c.BaseURL
	}
	if c.Version != "" {
		p.Version = c.Version
	}
	return p
}

// Validate 验证配置
func (c *Config) Validate() error {
	if !knownExchanges[c.Exchange] {
		return fmt.Errorf("未知的交易所: %q", c.Exchange)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("EXREST_TIMEOUT_SECONDS 必须大于 0")
	}
	if c.BaseURL != "" {
		if err := validateHTTPURL(c.BaseURL); err != nil {
			return fmt.Errorf("base_url 无效: %w", err)
		}
	}
	if strings.Contains(c.Version, "/") {
		return fmt.Errorf("version 不能包含 '/': %q", c.Version)
	}
	if c.Proxy != "" {
		if err := validateHTTPURL(c.Proxy); err != nil {
			return fmt.Errorf("proxy 无效: %w", err)
		}
	}
	if c.Secrets.BadgerPath == "" {
		return fmt.Errorf("secrets.badger_path 不能为空")
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme 必须是 http 或 https: %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("缺少 host: %q", raw)
	}
	return nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func orDefaultInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// parseIntEnv 解析整数环境变量
func parseIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
