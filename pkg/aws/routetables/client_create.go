package routetables

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/giantswarm/microerror"
	"github.com/go-logr/logr"

	"github.com/giantswarm/aws-route-propagator/pkg/errors"
)

type CreateRouteInput struct {
	RoleARN                string
	Region                 string
	RouteTableId           string
	DestinationCidrBlock   string
	VpcPeeringConnectionId string
}

type CreateRouteOutput struct {
	Status RouteStatus
}

// CreateRoute adds a peering route to the table. The destination CIDR is
// unique within a table, so a RouteAlreadyExists conflict means the route
// is already in place and is reported as RouteStatusAlreadyExists, not as
// an error.
func (c *client) CreateRoute(ctx context.Context, input CreateRouteInput) (output CreateRouteOutput, err error) {
	logger := logr.FromContextOrDiscard(ctx)
	logger.Info("Started creating route", "route-table-id", input.RouteTableId)
	defer func() {
		if err == nil {
			logger.Info("Finished creating route", "route-table-id", input.RouteTableId, "status", output.Status)
		} else {
			logger.Error(err, "Failed to create route", "route-table-id", input.RouteTableId)
		}
	}()

	if input.Region == "" {
		return CreateRouteOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.Region must not be empty", input)
	}
	if input.RouteTableId == "" {
		return CreateRouteOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.RouteTableId must not be empty", input)
	}
	if input.DestinationCidrBlock == "" {
		return CreateRouteOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.DestinationCidrBlock must not be empty", input)
	}
	if input.VpcPeeringConnectionId == "" {
		return CreateRouteOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.VpcPeeringConnectionId must not be empty", input)
	}

	ec2Input := ec2.CreateRouteInput{
		RouteTableId:           aws.String(input.RouteTableId),
		DestinationCidrBlock:   aws.String(input.DestinationCidrBlock),
		VpcPeeringConnectionId: aws.String(input.VpcPeeringConnectionId),
	}
	_, err = c.ec2Client.CreateRoute(ctx, &ec2Input, c.assumeRoleClient.OptionsFunc(input.RoleARN, input.Region))
	if errors.IsRouteAlreadyExists(err) {
		err = nil
		output = CreateRouteOutput{
			Status: RouteStatusAlreadyExists,
		}
		return output, nil
	}
	if err != nil {
		return CreateRouteOutput{}, microerror.Mask(err)
	}

	output = CreateRouteOutput{
		Status: RouteStatusCreated,
	}
	return output, nil
}
