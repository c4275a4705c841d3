package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"portprobe/scan"
)

// 默认值,与原工具保持一致
const (
	DefaultPorts     = "1-1024"
	DefaultTimeoutMS = 500
	EnvPrefix        = "PORTPROBE"
)

// 配置项的key,同时也是flag的名字
const (
	KeyIP       = "ip"
	KeyPorts    = "ports"
	KeyTimeout  = "timeout"
	KeyOpenOnly = "open-only"
	KeyVerbose  = "verbose"
	KeyLogFile  = "log-file"
	KeyNoColor  = "no-color"
)

var ErrInvalidTimeout = errors.New("timeout must be greater than 0")

// Config 一次运行的扫描配置,构造后只读
type Config struct {
	Target   *scan.Target
	Ports    []uint16
	Timeout  time.Duration
	OpenOnly bool
	Verbose  bool
	LogFile  string
	NoColor  bool
}

// NewViper 创建带默认值和环境变量绑定的viper实例,环境变量形如 PORTPROBE_OPEN_ONLY
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyPorts, DefaultPorts)
	v.SetDefault(KeyTimeout, DefaultTimeoutMS)
	v.SetDefault(KeyOpenOnly, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyNoColor, false)
	return v
}

// ReadFile 读取配置文件,格式由扩展名决定(yaml/toml/json)
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Load 从viper中取值并校验,任何错误都发生在探测开始之前
func Load(v *viper.Viper) (Config, error) {
	ip := v.GetString(KeyIP)
	if ip == "" {
		return Config{}, fmt.Errorf("%w: target IP is required", scan.ErrInvalidAddress)
	}
	target, err := scan.ParseTarget(ip)
	if err != nil {
		return Config{}, err
	}

	ports, err := scan.ResolvePorts(v.GetString(KeyPorts))
	if err != nil {
		return Config{}, err
	}

	timeoutMS := v.GetInt64(KeyTimeout)
	if timeoutMS <= 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidTimeout, timeoutMS)
	}

	return Config{
		Target:   target,
		Ports:    ports,
		Timeout:  time.Duration(timeoutMS) * time.Millisecond,
		OpenOnly: v.GetBool(KeyOpenOnly),
		Verbose:  v.GetBool(KeyVerbose),
		LogFile:  v.GetString(KeyLogFile),
		NoColor:  v.GetBool(KeyNoColor),
	}, nil
}

func (c Config) String() string {
	return fmt.Sprintf("target=%s ports=%d timeout=%v open-only=%v",
		c.Target, len(c.Ports), c.Timeout, c.OpenOnly)
}
