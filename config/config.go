package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/sat20-labs/ordinals/common"
	"github.com/sat20-labs/ordinals/indexer/subsidy"
	"github.com/sirupsen/logrus"
)

type YamlConf struct {
	Chain      string     `yaml:"chain"`
	Log        Log        `yaml:"log"`
	Subsidy    Subsidy    `yaml:"subsidy"`
	RPCService RPCService `yaml:"rpc_service"`
}

type Log struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
	// 日志文件保留天数和切分间隔
	MaxAgeDays    int `yaml:"max_age_days"`
	RotationHours int `yaml:"rotation_hours"`
}

type Subsidy struct {
	// 空表示使用内置数据
	Dataset  string            `yaml:"dataset"`
	Datasets map[string]string `yaml:"datasets,omitempty"`
	ExtendTo uint32            `yaml:"extend_to"`
	Validate bool              `yaml:"validate"`
}

// Source returns where chain's table is loaded from. A per-chain entry
// in Datasets wins over Dataset.
func (s *Subsidy) Source(chain string) subsidy.SourceConfig {
	dataset := s.Dataset
	if path, ok := s.Datasets[chain]; ok {
		dataset = path
	}
	return subsidy.SourceConfig{Dataset: dataset, ExtendTo: s.ExtendTo}
}

type RPCService struct {
	Addr      string `yaml:"addr"`
	Proxy     string `yaml:"proxy"`
	LogPath   string `yaml:"log_path"`
	CacheSize int    `yaml:"cache_size"`
	API       API    `yaml:"api"`
}

type API struct {
	APIKeyList      map[string]*APIKey `yaml:"apikey_list"`
	NoLimitApiList  []string           `yaml:"nolimit_api_list"`
	NoLimitHostList []string           `yaml:"nolimit_host_list"`
}

type APIKey struct {
	UserName  string     `yaml:"user_name"`
	RateLimit *RateLimit `yaml:"rate_limit"`
}

type RateLimit struct {
	PerSecond int `yaml:"per_second"`
	PerDay    int `yaml:"per_day"`
	Max       int `yaml:"max"`
	Burst     int `yaml:"burst"`
}

func GetBaseDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "./."
	}
	return filepath.Dir(execPath)
}

// ConfigFileFromArgs returns the value following -env, or ./.env.
func ConfigFileFromArgs(args []string) string {
	for i, item := range args {
		if item == "-env" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return "./.env"
}

func InitConfig(configFile string) (*YamlConf, error) {
	if configFile == "" {
		configFile = ConfigFileFromArgs(os.Args)
	}
	if !filepath.IsAbs(configFile) {
		configFile = filepath.Join(GetBaseDir(), configFile)
	}

	fmt.Printf("config file: %s\n", configFile)

	return LoadYamlConf(configFile)
}

func LoadYamlConf(cfgPath string) (*YamlConf, error) {
	confFile, err := os.Open(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cfg: %s, error: %s", cfgPath, err)
	}
	defer confFile.Close()

	ret := &YamlConf{}
	decoder := yaml.NewDecoder(confFile)
	err = decoder.Decode(ret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cfg: %s, error: %s", cfgPath, err)
	}

	if err := ret.applyDefaults(); err != nil {
		return nil, fmt.Errorf("invalid cfg: %s, error: %s", cfgPath, err)
	}
	return ret, nil
}

func (ret *YamlConf) applyDefaults() error {
	if ret.Chain == "" {
		ret.Chain = common.ChainMainnet
	}
	if !common.IsSupportedChain(ret.Chain) {
		return fmt.Errorf("unsupported chain %s", ret.Chain)
	}

	_, err := logrus.ParseLevel(ret.Log.Level)
	if err != nil {
		ret.Log.Level = "info"
	}

	if ret.Log.Path == "" {
		ret.Log.Path = "log"
	}
	ret.Log.Path = filepath.FromSlash(ret.Log.Path)
	if ret.Log.Path[len(ret.Log.Path)-1] != filepath.Separator {
		ret.Log.Path += string(filepath.Separator)
	}
	if ret.Log.MaxAgeDays <= 0 {
		ret.Log.MaxAgeDays = 30
	}
	if ret.Log.RotationHours <= 0 {
		ret.Log.RotationHours = 24
	}

	rpcService := &ret.RPCService
	if rpcService.Addr == "" {
		rpcService.Addr = "0.0.0.0:8080"
	}

	if rpcService.Proxy == "" {
		rpcService.Proxy = "/"
	}
	if rpcService.Proxy[0] != '/' {
		rpcService.Proxy = "/" + rpcService.Proxy
	}
	// routes are appended as proxy + "/path"
	rpcService.Proxy = strings.TrimRight(rpcService.Proxy, "/")

	if rpcService.LogPath == "" {
		rpcService.LogPath = "log"
	}

	if rpcService.CacheSize <= 0 {
		rpcService.CacheSize = 10000
	}

	return nil
}

func NewDefaultYamlConf(chain string) (*YamlConf, error) {
	ret := &YamlConf{
		Chain: chain,
		Log: Log{
			Level: "info",
			Path:  "log/" + chain,
		},
		RPCService: RPCService{
			Addr:      "0.0.0.0:8080",
			Proxy:     "/" + chain,
			LogPath:   "log/" + chain,
			CacheSize: 10000,
			API: API{
				APIKeyList:      make(map[string]*APIKey),
				NoLimitApiList:  []string{"/health"},
				NoLimitHostList: make([]string, 0),
			},
		},
	}
	if err := ret.applyDefaults(); err != nil {
		return nil, err
	}
	return ret, nil
}

func SaveYamlConf(conf *YamlConf, path string) error {
	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
