package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Auth     Auth     `yaml:"auth"`
	Notify   Notify   `yaml:"notify"`
	Rotate   Rotate   `yaml:"rotate"`
}

// Server 服务器配置
type Server struct {
	Address string `yaml:"address"`
}

// Database 数据库配置
type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Auth 认证配置
type Auth struct {
	Secret string `yaml:"secret"` // JWT签名密钥，不能为空
}

// Notify 群消息通知配置
type Notify struct {
	URL     string `yaml:"url"`      // 机器人API地址，为空时不发送通知
	GroupID string `yaml:"group_id"` // 群号
}

// Rotate 每日密码轮换配置
type Rotate struct {
	Enabled *bool `yaml:"enabled"` // 默认开启
}

// RotateEnabled 是否开启每日密码轮换
func (c *Config) RotateEnabled() bool {
	return c.Rotate.Enabled == nil || *c.Rotate.Enabled
}

// LoadConfig 从文件加载配置
func LoadConfig() (*Config, error) {
	// 1. 尝试从环境变量获取配置文件路径
	configPath := os.Getenv("CONFIG_PATH")

	// 2. 如果环境变量未设置，使用默认路径
	if configPath == "" {
		configPath = "config.yaml"
	}

	// 3. 读取配置文件
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// 4. 解析YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// 5. 验证配置并设置默认值
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate 验证配置并填充默认值
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		c.Server.Address = "127.0.0.1:8080"
	}

	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "sqlite" && c.Database.DSN == "" {
		c.Database.DSN = "navportal.db"
	}

	// 签名密钥必须在启动前配置好，拒绝空密钥启动
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth.secret is required")
	}

	return nil
}
