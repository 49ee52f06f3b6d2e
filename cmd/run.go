package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mailtriage/internal/mailbox"
	"mailtriage/internal/models"
	"mailtriage/internal/triage"
)

// runCmd processes the sample inbox and prints one JSON record per line on
// stdout. Status markers and logging go to stderr so stdout stays
// machine-parseable.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Triage the sample inbox and emit one JSON record per e-mail",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}
		defer appInstance.Close()

		progress := triage.Progress(func(email models.Email, record *models.Record, err error) {
			switch {
			case err != nil && record == nil:
				fmt.Fprintf(os.Stderr, "  - %s %s: %v\n", color.RedString("ERROR"), email.ID, err)
			case err != nil:
				fmt.Fprintf(os.Stderr, "  - %s %s: %s\n", color.YellowString("Fallback"), email.ID, email.Subject)
			default:
				fmt.Fprintf(os.Stderr, "  - %s %s: %s [%s]\n", color.GreenString("Processed"), email.ID, email.Subject, record.Categoria)
			}
		})

		emails := mailbox.Fixtures()
		return appInstance.Triage.ProcessAll(cmd.Context(), emails, os.Stdout, progress)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
