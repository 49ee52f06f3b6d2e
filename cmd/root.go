package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mailtriage/internal/app"
	"mailtriage/internal/config"
	"mailtriage/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "mailtriage",
	Short: "LLM-powered e-mail triage",
	Long: `Mailtriage classifies customer e-mails into a fixed category set
(Reclamação, Sugestão, Dúvida, Elogio) using a generative model, derives a
routing action and generates a one-sentence summary plus a short reply.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the model don't need a credential.
		switch cmd.Name() {
		case "help", "version", "fixtures", "completion",
			cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return nil
		}
		// Shell completion scripts are generated by subcommands of
		// "completion" (bash, zsh, ...).
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check provider configuration and other diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		completion := appInstance.Completion
		fmt.Printf("Provider: %s (model %s)\n", completion.Name(), completion.ModelName())

		status := completion.Status()
		if status != services.ProviderStatusActive {
			fmt.Printf("Status:   %s\n", color.RedString(string(status)))
			return fmt.Errorf("completion provider is not usable")
		}
		fmt.Printf("Status:   %s\n", color.GreenString(string(status)))
		fmt.Printf("Retry:    %d attempts, backoff %s..%s\n",
			appInstance.Config.Retry.MaxAttempts,
			appInstance.Config.Retry.InitialInterval,
			appInstance.Config.Retry.MaxInterval)
		return nil
	},
}
