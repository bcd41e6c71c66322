package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/kakomon/internal/app"
)

// runApp assembles options and launches the TUI. The bank itself is loaded
// on the load screen so a bad path can be corrected interactively.
func runApp(cmd *cobra.Command) error {
	certDir, _ := cmd.Flags().GetString("out")
	return app.Run(app.Options{
		BankPath: resolveBankPath(cmd),
		CertDir:  certDir,
	})
}
