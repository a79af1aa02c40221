package assumerole

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/aws-route-propagator/pkg/errors"
)

type Client interface {
	OptionsFunc(roleArn, region string) func(o *ec2.Options)
}

func NewClient(stsCredsAssumeRoleAPIClient stscreds.AssumeRoleAPIClient) (Client, error) {
	if stsCredsAssumeRoleAPIClient == nil {
		return nil, microerror.Maskf(errors.InvalidConfigError, "stsCredsAssumeRoleAPIClient must not be empty")
	}

	return &client{
		stsCredsAssumeRoleAPIClient: stsCredsAssumeRoleAPIClient,
	}, nil
}

type client struct {
	stsCredsAssumeRoleAPIClient stscreds.AssumeRoleAPIClient
}

// OptionsFunc returns per-call EC2 client options. An empty roleArn keeps
// the base credentials, an empty region keeps the client's region.
func (c *client) OptionsFunc(roleArn, region string) func(o *ec2.Options) {
	return func(o *ec2.Options) {
		if roleArn != "" {
			assumeRoleProvider := stscreds.NewAssumeRoleProvider(c.stsCredsAssumeRoleAPIClient, roleArn)
			o.Credentials = aws.NewCredentialsCache(assumeRoleProvider)
		}
		if region != "" {
			o.Region = region
		}
	}
}
