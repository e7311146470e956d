package config

import errorspkg "github.com/pkg/errors"

const (
	defaultAccountName      = "_brewgate"
	defaultHomePath         = "/usr/local"
	defaultCachePath        = "/Library/Caches/Homebrew"
	defaultLogPath          = "/var/log/brewgate"
	defaultHomeAnchor       = ".git"
	defaultRevertHomeGroup  = "admin"
	defaultRevertCacheGroup = "staff"
	defaultIDCeiling        = 500
	defaultBrewBin          = "brew"
	defaultGitBin           = "git"
	defaultSudoBin          = "sudo"
	defaultDirectoryBin     = "dscl"
	defaultRepoURL          = "https://github.com/Homebrew/brew"
)

type Builder struct {
	config *Config
}

func NewBuilder() *Builder {
	return &Builder{
		config: &Config{},
	}
}

func NewBuilderFromFile(pathToYaml string) (*Builder, error) {
	config, err := Load(pathToYaml)
	if err != nil {
		return nil, err
	}

	return &Builder{
		config: &config,
	}, nil
}

func (b *Builder) Build() (Config, error) {
	config := *b.config

	applyStringDefault(&config.AccountName, defaultAccountName)
	applyStringDefault(&config.HomePath, defaultHomePath)
	applyStringDefault(&config.CachePath, defaultCachePath)
	applyStringDefault(&config.LogPath, defaultLogPath)
	applyStringDefault(&config.HomeAnchor, defaultHomeAnchor)
	applyStringDefault(&config.RevertHomeGroup, defaultRevertHomeGroup)
	applyStringDefault(&config.RevertCacheGroup, defaultRevertCacheGroup)
	applyStringDefault(&config.BrewBin, defaultBrewBin)
	applyStringDefault(&config.GitBin, defaultGitBin)
	applyStringDefault(&config.SudoBin, defaultSudoBin)
	applyStringDefault(&config.DirectoryBin, defaultDirectoryBin)
	applyStringDefault(&config.RepoURL, defaultRepoURL)

	if config.IDCeiling == 0 {
		config.IDCeiling = defaultIDCeiling
	}
	if config.IDCeiling < 1 {
		return Config{}, errorspkg.Errorf("invalid id ceiling: %d", config.IDCeiling)
	}

	return config, nil
}

func (b *Builder) WithMetronEndpoint(metronEndpoint string) *Builder {
	if metronEndpoint == "" {
		return b
	}

	b.config.MetronEndpoint = metronEndpoint
	return b
}

func (b *Builder) WithIDCeiling(idCeiling int) *Builder {
	if idCeiling == 0 {
		return b
	}

	b.config.IDCeiling = idCeiling
	return b
}

func applyStringDefault(field *string, defaultValue string) {
	if *field == "" {
		*field = defaultValue
	}
}
