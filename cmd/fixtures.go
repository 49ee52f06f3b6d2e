package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"mailtriage/internal/mailbox"
)

// fixturesCmd lists the sample inbox without touching the model, so it works
// with no credential configured.
var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the sample e-mails processed by 'run'",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "From", "Subject", "Body"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, email := range mailbox.Fixtures() {
			body := email.Body
			if len([]rune(body)) > 48 {
				body = string([]rune(body)[:45]) + "..."
			}
			table.Append([]string{email.ID, email.From, email.Subject, body})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}
