package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tridentsearch/trident/pkg/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("InitViper", func() {
	It("applies defaults when no config file or env is present", func() {
		v, err := config.InitViper(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())

		cfg, err := config.Load(v)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.API.Listen).To(Equal(":5001"))
		Expect(cfg.API.Environment).To(Equal("development"))
		Expect(cfg.Store.Provider).To(Equal("mongo"))
		Expect(cfg.Store.URI).To(Equal("mongodb://localhost:27017/trident"))
		Expect(cfg.NLP.Target).To(Equal("http://localhost:8000"))
	})

	It("reads values from config.toml", func() {
		dir := GinkgoT().TempDir()
		contents := `
[api]
listen = ":9000"

[store]
provider = "memory"

[nlp]
target = "http://nlp.internal:8000"
`
		Expect(os.WriteFile(filepath.Join(dir, "config.toml"), []byte(contents), 0o644)).To(Succeed())

		v, err := config.InitViper(dir)
		Expect(err).NotTo(HaveOccurred())

		cfg, err := config.Load(v)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.API.Listen).To(Equal(":9000"))
		Expect(cfg.Store.Provider).To(Equal("memory"))
		Expect(cfg.NLP.Target).To(Equal("http://nlp.internal:8000"))

		// Untouched keys keep their defaults.
		Expect(cfg.API.Environment).To(Equal("development"))
		Expect(cfg.Store.URI).To(Equal("mongodb://localhost:27017/trident"))
	})

	It("lets environment variables override the config file", func() {
		dir := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[api]\nlisten = \":9000\"\n"), 0o644)).To(Succeed())

		GinkgoT().Setenv("TRIDENT_API_LISTEN", ":7000")
		GinkgoT().Setenv("TRIDENT_API_ENVIRONMENT", "production")

		v, err := config.InitViper(dir)
		Expect(err).NotTo(HaveOccurred())

		cfg, err := config.Load(v)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.API.Listen).To(Equal(":7000"))
		Expect(cfg.API.Environment).To(Equal("production"))
	})

	It("rejects a malformed config file", func() {
		dir := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid toml"), 0o644)).To(Succeed())

		_, err := config.InitViper(dir)
		Expect(err).To(HaveOccurred())
	})
})
