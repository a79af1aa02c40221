package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/giantswarm/microerror"
)

// LoadConfig loads AWS SDK configuration. The shared config profile is
// passed explicitly rather than read from ambient process environment, so
// the selected profile is always the one the caller asked for. Empty
// profile and region fall back to the SDK's default chain (env, shared
// config, IMDS).
func LoadConfig(ctx context.Context, profile, region string) (awssdk.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return awssdk.Config{}, microerror.Mask(err)
	}

	return cfg, nil
}
