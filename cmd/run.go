package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zonesec/zonesec/cloudflare"
	"github.com/zonesec/zonesec/config"
	"github.com/zonesec/zonesec/harden"
	"github.com/zonesec/zonesec/log"
	"github.com/zonesec/zonesec/preload"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <zone>",
		Args:  cobra.ExactArgs(1),
		Short: "performs the hardening pass against one zone",
		RunE:  runHarden,
	}
}

func runHarden(cmd *cobra.Command, args []string) error {
	creds, err := resolveCredentials()
	if err != nil {
		return err
	}

	logger := log.PrefixedLog("harden")
	logger.Debugf("authenticating with %s", creds)

	client := cloudflare.NewClient(creds,
		cloudflare.WithBaseURL(cfg.Cloudflare.BaseURL),
		cloudflare.WithTimeout(cfg.Cloudflare.Timeout.ToDuration()),
		cloudflare.WithAttempts(cfg.Cloudflare.Attempts))

	runner := harden.NewRunner(client, newSubmitter(), harden.NewStatusReporter(logger), harden.Options{
		ApexConflictTypes:  cfg.Harden.ApexConflictTypes.Types(),
		RecordTTL:          cfg.Harden.RecordTTL,
		PlaceholderAddress: cfg.Harden.PlaceholderAddress,
		SPFPolicy:          cfg.Harden.SPFPolicy,
		ProxyPlaceholder:   cfg.Harden.ProxyPlaceholder,
	})

	report, err := runner.Run(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("can't harden zone '%s': %w", args[0], err)
	}

	if reportErr := report.Err(); reportErr != nil {
		logger.Warnf("completed with failures: %v", reportErr)
	}

	return nil
}

func newSubmitter() *preload.Submitter {
	return preload.NewSubmitter(
		preload.WithEndpoint(cfg.Preload.Endpoint),
		preload.WithTimeout(cfg.Preload.Timeout.ToDuration()),
		preload.WithAttempts(cfg.Preload.Attempts))
}

// resolveCredentials picks each credential by precedence: CLI flag, then
// environment, then config file. A token always beats email and key.
func resolveCredentials() (cloudflare.Credentials, error) {
	token := firstOf(apiToken, os.Getenv(config.EnvAPIToken), cfg.Cloudflare.Token)
	email := firstOf(apiEmail, os.Getenv(config.EnvAPIEmail), cfg.Cloudflare.Email)
	key := firstOf(apiKey, os.Getenv(config.EnvAPIKey), cfg.Cloudflare.APIKey)

	return cloudflare.CredentialsFrom(token, email, key)
}

func firstOf(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
