package credentials

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
)

// Resolver resolves the credentials recorded for a named profile.
type Resolver interface {
	Resolve(ctx context.Context, profile string) (aws.Credentials, error)
}

// SharedConfigResolver resolves profiles from the AWS shared credentials and
// config files using the SDK's own loading chain.
//
// Empty file lists mean the SDK defaults (~/.aws/credentials, ~/.aws/config,
// or AWS_SHARED_CREDENTIALS_FILE / AWS_CONFIG_FILE when set). The EC2
// instance metadata fallback is disabled, so a profile without usable keys
// fails instead of reaching out to the network.
type SharedConfigResolver struct {
	CredentialsFiles []string
	ConfigFiles      []string
}

// NewSharedConfigResolver creates a resolver. Empty paths keep the SDK default.
func NewSharedConfigResolver(credentialsFile, configFile string) *SharedConfigResolver {
	r := &SharedConfigResolver{}
	if credentialsFile != "" {
		r.CredentialsFiles = []string{credentialsFile}
	}
	if configFile != "" {
		r.ConfigFiles = []string{configFile}
	}
	return r
}

// Resolve loads an SDK config bound to profile and retrieves its credentials.
// SDK errors are returned unchanged.
func (r *SharedConfigResolver) Resolve(ctx context.Context, profile string) (aws.Credentials, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithSharedConfigProfile(profile),
		config.WithEC2IMDSClientEnableState(imds.ClientDisabled),
	}
	if len(r.CredentialsFiles) > 0 {
		opts = append(opts, config.WithSharedCredentialsFiles(r.CredentialsFiles))
	}
	if len(r.ConfigFiles) > 0 {
		opts = append(opts, config.WithSharedConfigFiles(r.ConfigFiles))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Credentials{}, err
	}
	if cfg.Credentials == nil {
		return aws.Credentials{}, ErrNoCredentialsProvider
	}
	return cfg.Credentials.Retrieve(ctx)
}

// ErrNoCredentialsProvider is returned when the SDK resolved a config with no
// credentials provider at all.
var ErrNoCredentialsProvider = errors.New("no credentials provider configured for profile")

// StaticResolver serves fixed pairs keyed by profile name. Unknown profiles
// fail with the same error type the SDK uses for a missing profile.
type StaticResolver map[string]Pair

// Resolve returns the pair stored for profile.
func (r StaticResolver) Resolve(ctx context.Context, profile string) (aws.Credentials, error) {
	pair, ok := r[profile]
	if !ok {
		return aws.Credentials{}, config.SharedConfigProfileNotExistError{
			Profile: profile,
			Err:     errors.New("profile not present in static store"),
		}
	}
	return awscreds.NewStaticCredentialsProvider(pair.AccessKeyID, pair.SecretAccessKey, "").Retrieve(ctx)
}
