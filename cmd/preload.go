package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zonesec/zonesec/harden"
	"github.com/zonesec/zonesec/log"
)

func newPreloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preload <domain>",
		Args:  cobra.ExactArgs(1),
		Short: "submits a domain to the HSTS preload list without touching the zone",
		RunE:  submitPreload,
	}
}

func submitPreload(cmd *cobra.Command, args []string) error {
	reporter := harden.NewStatusReporter(log.PrefixedLog("preload"))
	reporter.Preload(newSubmitter().Submit(cmd.Context(), args[0]))

	return nil
}
