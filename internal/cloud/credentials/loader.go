// Package credentials looks up access/secret key pairs for named profiles in
// the local shared credentials store.
//
// Lookup is delegated to a Resolver. The production resolver reads the AWS
// shared config files through aws-sdk-go-v2; tests substitute a
// StaticResolver. Nothing is cached: each Load reads the store again.
package credentials

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/rescale/pathscope/internal/logging"
)

// DefaultProfile is the profile the SDK uses when none is named.
const DefaultProfile = "default"

// Loader returns credential pairs for profiles.
type Loader struct {
	resolver Resolver
	logger   *logging.Logger
}

// NewLoader creates a loader backed by resolver. A nil logger discards output.
func NewLoader(resolver Resolver, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Loader{resolver: resolver, logger: logger}
}

// Load returns the access/secret key pair recorded for profile.
//
// Resolver errors (missing profile, missing or malformed store) are returned
// unchanged so callers can inspect them with errors.As or IsProfileNotFound.
func (l *Loader) Load(ctx context.Context, profile string) (Pair, error) {
	creds, err := l.resolver.Resolve(ctx, profile)
	if err != nil {
		l.logger.Debug().Err(err).Str("profile", profile).Msg("credential lookup failed")
		return Pair{}, err
	}

	pair := Pair{
		AccessKeyID:     creds.AccessKeyID,
		SecretAccessKey: creds.SecretAccessKey,
	}
	l.logger.Debug().
		Str("profile", profile).
		Str("source", creds.Source).
		Str("credentials", pair.String()).
		Msg("loaded credentials")
	return pair, nil
}

// LoadCredentials reads the pair for profile from the default shared
// credentials store.
func LoadCredentials(ctx context.Context, profile string) (accessKey, secretKey string, err error) {
	pair, err := NewLoader(&SharedConfigResolver{}, nil).Load(ctx, profile)
	if err != nil {
		return "", "", err
	}
	return pair.AccessKeyID, pair.SecretAccessKey, nil
}

// IsProfileNotFound checks if err reports a profile absent from the store.
func IsProfileNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notExist config.SharedConfigProfileNotExistError
	return errors.As(err, &notExist)
}
