package config // import "github.com/brewgate/brewgate/commands/config"

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	AccountName      string `yaml:"account_name"`
	HomePath         string `yaml:"home_path"`
	CachePath        string `yaml:"cache_path"`
	LogPath          string `yaml:"log_path"`
	HomeAnchor       string `yaml:"home_anchor"`
	CacheAnchor      string `yaml:"cache_anchor"`
	RevertHomeGroup  string `yaml:"revert_home_group"`
	RevertCacheGroup string `yaml:"revert_cache_group"`
	IDCeiling        int    `yaml:"id_ceiling"`
	BrewBin          string `yaml:"brew_bin"`
	GitBin           string `yaml:"git_bin"`
	SudoBin          string `yaml:"sudo_bin"`
	DirectoryBin     string `yaml:"directory_service_bin"`
	RepoURL          string `yaml:"repo_url"`
	MetronEndpoint   string `yaml:"metron_endpoint"`
}

func Load(configPath string) (Config, error) {
	configContent, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config path: %s", err)
	}

	var config Config
	err = yaml.Unmarshal(configContent, &config)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config file: %s", err)
	}

	return config, nil
}
