package config

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rushteam/dinekit/core"
	"github.com/rushteam/dinekit/dataset"
	"github.com/rushteam/dinekit/pipeline"
	"github.com/rushteam/dinekit/store"
)

// AppConfig 是命令行入口的完整配置，pipeline 段与 pipeline.Config 的格式一致。
type AppConfig struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Users   UsersConfig   `yaml:"users"`
	Store   StoreConfig   `yaml:"store"`
	Query   QueryConfig   `yaml:"query"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`

	pipeline.Config `yaml:",inline"`
}

// DatasetConfig 描述餐厅数据来源。Archive 非空时从 zip 中读取 Member，否则读取 Path。
type DatasetConfig struct {
	Archive         string `yaml:"archive"`
	Member          string `yaml:"member"`
	Path            string `yaml:"path"`
	City            string `yaml:"city"`
	CuisinesFile    string `yaml:"cuisines_file"`
	MinCuisineCount int    `yaml:"min_cuisine_count"`
}

// UsersConfig 描述演示用户的生成方式。
type UsersConfig struct {
	NamesFile  string `yaml:"names_file"`
	Count      int    `yaml:"count"`
	MaxPerUser int    `yaml:"max_per_user"`
	Seed       uint64 `yaml:"seed"`
	// Key 是交互数据在 Store 中的 key；Store 中已有数据时不再生成
	Key string `yaml:"key"`
}

// StoreConfig 选择交互数据与黑名单的存储：memory 或 redis。
type StoreConfig struct {
	Type string `yaml:"type"`
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
}

// QueryConfig 是一次推荐请求：表单偏好、所在区域与好友。
type QueryConfig struct {
	User       string          `yaml:"user"`
	Friend     string          `yaml:"friend"`
	Area       string          `yaml:"area"`
	Preference core.Preference `yaml:"preference"`
}

type OutputConfig struct {
	GeoJSON string `yaml:"geojson"`
}

type LogConfig struct {
	Env string `yaml:"env"` // production / development
}

// DefaultAppConfig 返回默认配置。
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Dataset: DatasetConfig{
			Archive:         "yelp_academic_dataset_business.json.zip",
			Member:          "yelp_academic_dataset_business.json",
			City:            "Nashville",
			CuisinesFile:    "cuisines.txt",
			MinCuisineCount: dataset.DefaultMinCuisineCount,
		},
		Users: UsersConfig{
			NamesFile:  "names.csv",
			Count:      30,
			MaxPerUser: 5,
			Seed:       1,
		},
		Store:  StoreConfig{Type: "memory"},
		Output: OutputConfig{GeoJSON: "restaurants.geojson"},
		Log:    LogConfig{Env: "development"},
	}
}

// LoadAppConfig 从 YAML 文件加载配置，未设置的字段取默认值。
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseAppConfig(data)
}

// ParseAppConfig 解析 YAML 配置，未设置的字段取默认值。
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := ValidatePipelineConfig(&cfg.Config); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewLogger 按运行环境创建 zap.Logger。
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// OpenStore 按配置创建存储。
func OpenStore(ctx context.Context, cfg StoreConfig) (core.Store, error) {
	switch cfg.Type {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		s, err := store.NewRedisStore(ctx, cfg.Addr, cfg.DB)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeNotSupported,
			fmt.Sprintf("store: unsupported type %q", cfg.Type))
	}
}
