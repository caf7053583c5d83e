package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rescale/pathscope/internal/cloud/credentials"
)

// newCredsCmd creates the 'creds' command.
func newCredsCmd() *cobra.Command {
	var (
		credentialsFile string
		awsConfigFile   string
		showSecret      bool
	)

	cmd := &cobra.Command{
		Use:   "creds [profile]",
		Short: "Show the access key pair for a credentials profile",
		Long: `Look up the access key and secret key stored for a profile in the
local shared credentials store (~/.aws/credentials and ~/.aws/config by
default).

Profile selection (highest priority first):
  1. profile argument
  2. PATHSCOPE_PROFILE environment variable
  3. AWS_PROFILE environment variable
  4. profile in the configuration file
  5. "default"

The secret key is masked unless --show-secret is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var profile string
			if len(args) == 1 {
				profile = args[0]
			}
			cfg.MergeWithFlags(profile, credentialsFile, awsConfigFile)
			if err := cfg.Validate(); err != nil {
				return err
			}

			resolver := credentials.NewSharedConfigResolver(cfg.CredentialsFile, cfg.AWSConfigFile)
			loader := credentials.NewLoader(resolver, GetLogger())

			pair, err := loader.Load(GetContext(cmd), cfg.Profile)
			if err != nil {
				if credentials.IsProfileNotFound(err) {
					return fmt.Errorf("profile %q not found in credentials store: %w", cfg.Profile, err)
				}
				return err
			}

			secret := credentials.MaskSecret(pair.SecretAccessKey)
			if showSecret {
				secret = pair.SecretAccessKey
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "profile: %s\n", cfg.Profile)
			fmt.Fprintf(out, "aws_access_key_id: %s\n", pair.AccessKeyID)
			fmt.Fprintf(out, "aws_secret_access_key: %s\n", secret)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsFile, "credentials-file", "", "Shared credentials file (default: SDK default)")
	cmd.Flags().StringVar(&awsConfigFile, "aws-config-file", "", "Shared config file (default: SDK default)")
	cmd.Flags().BoolVar(&showSecret, "show-secret", false, "Print the secret key unmasked")

	return cmd
}
