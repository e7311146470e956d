package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brewgate/brewgate/commands/config"
)

var _ = Describe("Builder", func() {
	var builder *config.Builder

	BeforeEach(func() {
		builder = config.NewBuilder()
	})

	Describe("Build", func() {
		It("fills in the defaults", func() {
			cfg, err := builder.Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.AccountName).To(Equal("_brewgate"))
			Expect(cfg.HomePath).To(Equal("/usr/local"))
			Expect(cfg.CachePath).To(Equal("/Library/Caches/Homebrew"))
			Expect(cfg.LogPath).To(Equal("/var/log/brewgate"))
			Expect(cfg.HomeAnchor).To(Equal(".git"))
			Expect(cfg.CacheAnchor).To(BeEmpty())
			Expect(cfg.RevertHomeGroup).To(Equal("admin"))
			Expect(cfg.RevertCacheGroup).To(Equal("staff"))
			Expect(cfg.IDCeiling).To(Equal(500))
			Expect(cfg.BrewBin).To(Equal("brew"))
			Expect(cfg.GitBin).To(Equal("git"))
			Expect(cfg.SudoBin).To(Equal("sudo"))
			Expect(cfg.DirectoryBin).To(Equal("dscl"))
			Expect(cfg.RepoURL).To(Equal("https://github.com/Homebrew/brew"))
			Expect(cfg.MetronEndpoint).To(BeEmpty())
		})
	})

	Describe("WithMetronEndpoint", func() {
		It("overrides the endpoint", func() {
			cfg, err := builder.WithMetronEndpoint("127.0.0.1:8081").Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.MetronEndpoint).To(Equal("127.0.0.1:8081"))
		})

		Context("when the endpoint is empty", func() {
			It("leaves the config alone", func() {
				cfg, err := builder.WithMetronEndpoint("").Build()

				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.MetronEndpoint).To(BeEmpty())
			})
		})
	})

	Describe("WithIDCeiling", func() {
		It("overrides the ceiling", func() {
			cfg, err := builder.WithIDCeiling(400).Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.IDCeiling).To(Equal(400))
		})

		Context("when the ceiling is zero", func() {
			It("keeps the default", func() {
				cfg, err := builder.WithIDCeiling(0).Build()

				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.IDCeiling).To(Equal(500))
			})
		})

		Context("when the ceiling is negative", func() {
			It("returns an error", func() {
				_, err := builder.WithIDCeiling(-3).Build()

				Expect(err).To(MatchError(ContainSubstring("invalid id ceiling: -3")))
			})
		})
	})

	Describe("NewBuilderFromFile", func() {
		var configDir string

		BeforeEach(func() {
			var err error
			configDir, err = os.MkdirTemp("", "config-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			Expect(os.RemoveAll(configDir)).To(Succeed())
		})

		It("keeps the file's values and defaults the rest", func() {
			configPath := filepath.Join(configDir, "config.yaml")
			Expect(os.WriteFile(configPath, []byte(
				"account_name: _custom\nid_ceiling: 400\nsudo_bin: /usr/bin/sudo\n",
			), 0644)).To(Succeed())

			builder, err := config.NewBuilderFromFile(configPath)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := builder.Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.AccountName).To(Equal("_custom"))
			Expect(cfg.IDCeiling).To(Equal(400))
			Expect(cfg.SudoBin).To(Equal("/usr/bin/sudo"))
			Expect(cfg.HomePath).To(Equal("/usr/local"))
		})

		Context("when the file does not exist", func() {
			It("returns an error", func() {
				_, err := config.NewBuilderFromFile(filepath.Join(configDir, "absent.yaml"))

				Expect(err).To(MatchError(ContainSubstring("invalid config path")))
			})
		})

		Context("when the file is not valid yaml", func() {
			It("returns an error", func() {
				configPath := filepath.Join(configDir, "config.yaml")
				Expect(os.WriteFile(configPath, []byte("%&%&%&%&"), 0644)).To(Succeed())

				_, err := config.NewBuilderFromFile(configPath)

				Expect(err).To(MatchError(ContainSubstring("invalid config file")))
			})
		})
	})
})
