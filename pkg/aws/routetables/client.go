package routetables

import (
	"context"

	"github.com/giantswarm/microerror"

	"github.com/giantswarm/aws-route-propagator/pkg/aws/assumerole"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/ec2api"
	"github.com/giantswarm/aws-route-propagator/pkg/errors"
)

type Client interface {
	GetMain(ctx context.Context, input GetMainRouteTableInput) (GetMainRouteTableOutput, error)
	List(ctx context.Context, input ListRouteTablesInput) (ListRouteTablesOutput, error)
	CreateRoute(ctx context.Context, input CreateRouteInput) (CreateRouteOutput, error)
}

func NewClient(ec2Client ec2api.Client, assumeRoleClient assumerole.Client) (Client, error) {
	if ec2Client == nil {
		return nil, microerror.Maskf(errors.InvalidConfigError, "ec2Client must not be empty")
	}
	if assumeRoleClient == nil {
		return nil, microerror.Maskf(errors.InvalidConfigError, "assumeRoleClient must not be empty")
	}

	return &client{
		ec2Client:        ec2Client,
		assumeRoleClient: assumeRoleClient,
	}, nil
}

type client struct {
	ec2Client        ec2api.Client
	assumeRoleClient assumerole.Client
}
