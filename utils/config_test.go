package utils

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	It("has valid defaults", func() {
		cfg := DefaultConfig()
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.AliveRune()).To(Equal('x'))
		Expect(cfg.MaxGenerations).To(BeZero())
	})

	It("loads YAML and keeps defaults for missing fields", func() {
		path := write("gol.yaml", "frame_delay: 250ms\nalive_glyph: \"#\"\nmax_generations: 40\n")

		cfg, err := LoadConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.FrameDelay).To(Equal(250 * time.Millisecond))
		Expect(cfg.AliveGlyph).To(Equal("#"))
		Expect(cfg.MaxGenerations).To(Equal(40))
		Expect(cfg.DeadGlyph).To(Equal("."))
		Expect(cfg.StagnationThreshold).To(Equal(5))
	})

	It("loads JSON by extension", func() {
		path := write("gol.json", `{"alive_marker": "o", "auto_restart": true, "frame_delay": 1000000}`)

		cfg, err := LoadConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.AliveRune()).To(Equal('o'))
		Expect(cfg.AutoRestart).To(BeTrue())
		Expect(cfg.FrameDelay).To(Equal(time.Millisecond))
	})

	It("fails for a missing file", func() {
		_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("fails for malformed content", func() {
		path := write("broken.json", `{"max_generations": "many"`)

		_, err := LoadConfig(path)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to unmarshal"))
	})

	It("rejects a multi-character alive marker", func() {
		path := write("marker.yaml", "alive_marker: xx\n")

		_, err := LoadConfig(path)
		Expect(err).To(MatchError(ContainSubstring("alive_marker")))
	})

	It("rejects a whitespace alive marker", func() {
		path := write("blank.yaml", "alive_marker: \" \"\n")

		_, err := LoadConfig(path)
		Expect(err).To(MatchError(ContainSubstring("whitespace")))

		cfg := DefaultConfig()
		cfg.AliveMarker = "\t"
		Expect(cfg.Validate()).NotTo(Succeed())
	})

	It("rejects negative generation limits", func() {
		cfg := DefaultConfig()
		cfg.MaxGenerations = -1
		Expect(cfg.Validate()).NotTo(Succeed())
	})
})
