package cmd

import (
	"io"
	"os"

	"github.com/zonesec/zonesec/config"

	. "github.com/zonesec/zonesec/helpertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func executeCommand(args ...string) error {
	c := NewRootCommand()
	c.SetOut(io.Discard)
	c.SetErr(io.Discard)
	c.SetArgs(args)

	return c.Execute()
}

func clearCredentialEnv() {
	for _, key := range []string{
		config.ConfigFilePath, config.EnvAPIToken, config.EnvAPIEmail, config.EnvAPIKey,
	} {
		Expect(os.Unsetenv(key)).Should(Succeed())
	}
}

var _ = Describe("root command", func() {
	BeforeEach(clearCredentialEnv)

	When("no arguments are passed", func() {
		It("should print the usage", func() {
			Expect(executeCommand()).Should(Succeed())
		})
	})

	When("version command is called", func() {
		It("should execute without error", func() {
			Expect(executeCommand("version")).Should(Succeed())
		})
	})

	When("a config file is provided", func() {
		It("should accept a valid file", func() {
			path := TempStringFile("zonesec.yml",
				"log:",
				"  level: debug",
				"harden:",
				"  recordTtl: 300")

			Expect(executeCommand("-c", path, "version")).Should(Succeed())
			Expect(cfg.Harden.RecordTTL).Should(Equal(300))
		})

		It("should fail on a missing file when the path was set explicitly", func() {
			err := executeCommand("-c", "/does/not/exist.yml", "version")

			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("can't read config file"))
		})

		It("should read the config path from the environment", func() {
			path := TempStringFile("zonesec.yml",
				"harden:",
				"  spfPolicy: \"v=spf1 mx -all\"")
			Expect(os.Setenv(config.ConfigFilePath, path)).Should(Succeed())

			Expect(executeCommand("version")).Should(Succeed())
			Expect(cfg.Harden.SPFPolicy).Should(Equal("v=spf1 mx -all"))
		})

		It("should fail on a file with unknown properties", func() {
			path := TempStringFile("zonesec.yml", "unknownProperty: true")

			err := executeCommand("-c", path, "version")

			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("wrong file structure"))
		})
	})
})
