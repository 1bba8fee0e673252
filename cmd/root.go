package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zonesec/zonesec/config"
	"github.com/zonesec/zonesec/log"
)

const defaultConfigPath = "./zonesec.yml"

//nolint:gochecknoglobals
var (
	version   = "undefined"
	buildTime = "undefined"

	configPath string
	apiToken   string
	apiEmail   string
	apiKey     string

	cfg *config.Config
)

// NewRootCommand creates a new root cli command instance
func NewRootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "zonesec <zone>",
		Short: "zonesec hardens the security settings of a DNS zone",
		Long: `An idempotent hardening pass for a Cloudflare managed zone:
DNSSEC, an IPv6 placeholder record at the apex, strict TLS settings
with HSTS and an SPF record which rejects all mail, followed by a
submission of the domain to the HSTS preload list.`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: initConfigPreRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return runHarden(cmd, args)
		},
		SilenceUsage: true,
	}

	c.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config file")
	c.PersistentFlags().StringVar(&apiToken, "token", "", "Cloudflare API token")
	c.PersistentFlags().StringVar(&apiEmail, "email", "", "Cloudflare account email, requires --api-key")
	c.PersistentFlags().StringVar(&apiKey, "api-key", "", "Cloudflare global API key, requires --email")

	c.AddCommand(newRunCommand(), newPreloadCommand(), newVersionCommand())

	return c
}

func initConfigPreRun(cmd *cobra.Command, _ []string) error {
	// a .env file is optional, existing environment always wins
	_ = godotenv.Load()

	mandatory := cmd.Flags().Changed("config")

	if path, ok := os.LookupEnv(config.ConfigFilePath); ok {
		configPath = path
		mandatory = true
	}

	loaded, err := config.LoadConfig(configPath, mandatory)
	if err != nil {
		return err
	}

	cfg = loaded
	log.ConfigureLogger(cfg.Log)

	return nil
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Log().Error("error during execution: ", err)
		os.Exit(1)
	}
}
