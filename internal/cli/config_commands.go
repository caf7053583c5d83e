package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rescale/pathscope/internal/config"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pathscope configuration",
		Long: `Configuration management commands for pathscope.

Commands:
  init  - Write a configuration file
  show  - Display current configuration
  path  - Show configuration file path`,
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigPathCmd())

	return configCmd
}

// newConfigInitCmd creates the 'config init' command.
func newConfigInitCmd() *cobra.Command {
	var (
		force           bool
		profile         string
		credentialsFile string
		awsConfigFile   string
		hideHidden      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file",
		Long: `Write a configuration file from the given flags.

The file is written to --config, or ~/.config/pathscope/config.csv by default.
Use --force to overwrite an existing file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath()
			out := cmd.OutOrStdout()

			if !force {
				if _, err := os.Stat(path); err == nil {
					fmt.Fprintf(out, "Configuration already exists at: %s\n", path)
					fmt.Fprintln(out, "Use --force to overwrite or run 'config show' to view current config.")
					return nil
				}
			}

			cfg := config.Default()
			if profile != "" {
				cfg.Profile = profile
			}
			cfg.CredentialsFile = credentialsFile
			cfg.AWSConfigFile = awsConfigFile
			cfg.ShowHidden = !hideHidden
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfgFile == "" {
				if err := config.EnsureConfigDir(); err != nil {
					return fmt.Errorf("failed to create config directory: %w", err)
				}
			}
			if err := config.SaveConfigCSV(cfg, path); err != nil {
				return err
			}
			GetLogger().Info().Str("path", path).Msg("configuration written")
			fmt.Fprintf(out, "Configuration saved to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().StringVar(&profile, "profile", "", "Default credentials profile")
	cmd.Flags().StringVar(&credentialsFile, "credentials-file", "", "Shared credentials file")
	cmd.Flags().StringVar(&awsConfigFile, "aws-config-file", "", "Shared config file")
	cmd.Flags().BoolVar(&hideHidden, "hide-hidden", false, "Make 'ls' omit dot-files by default")

	return cmd
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			orDefault := func(v string) string {
				if v == "" {
					return "(SDK default)"
				}
				return v
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file:      %s\n", configPath())
			fmt.Fprintf(out, "Profile:          %s\n", cfg.Profile)
			fmt.Fprintf(out, "Credentials file: %s\n", orDefault(cfg.CredentialsFile))
			fmt.Fprintf(out, "AWS config file:  %s\n", orDefault(cfg.AWSConfigFile))
			fmt.Fprintf(out, "Show hidden:      %t\n", cfg.ShowHidden)
			return nil
		},
	}
}

// newConfigPathCmd creates the 'config path' command.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), configPath())
			return nil
		},
	}
}
