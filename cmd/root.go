package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kakomon",
	Short: "Past-exam drill app",
	Long:  "Kakomon — terminal drill app for past national-exam questions: pick sittings and categories from a CSV bank, answer, resubmit until perfect.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank CSV (overrides KAKOMON_BANK env var)")
	rootCmd.Flags().String("out", ".", "Directory where certificates are saved")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBankPath returns the bank path using the --bank flag (highest
// priority), then the KAKOMON_BANK env var. Empty means the user will enter
// it on the load screen.
func resolveBankPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	return os.Getenv("KAKOMON_BANK")
}
