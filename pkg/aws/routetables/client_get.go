package routetables

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/giantswarm/microerror"
	"github.com/go-logr/logr"

	"github.com/giantswarm/aws-route-propagator/pkg/errors"
)

type GetMainRouteTableInput struct {
	RoleARN string
	Region  string
	VpcId   string
}

type GetMainRouteTableOutput struct {
	RouteTableId string
}

// GetMain resolves the VPC's main route table, the implicit table for
// subnets without an explicit association. Every VPC has exactly one; not
// finding it is MainRouteTableNotFoundError.
func (c *client) GetMain(ctx context.Context, input GetMainRouteTableInput) (output GetMainRouteTableOutput, err error) {
	logger := logr.FromContextOrDiscard(ctx)
	logger.Info("Started getting main route table")
	defer func() {
		if err == nil {
			logger.Info("Finished getting main route table", "route-table-id", output.RouteTableId)
		} else {
			logger.Error(err, "Failed to get main route table")
		}
	}()

	if input.Region == "" {
		return GetMainRouteTableOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.Region must not be empty", input)
	}
	if input.VpcId == "" {
		return GetMainRouteTableOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.VpcId must not be empty", input)
	}

	ec2Input := ec2.DescribeRouteTablesInput{
		Filters: []ec2Types.Filter{
			{
				Name:   aws.String(filterNameVpcID),
				Values: []string{input.VpcId},
			},
			{
				Name:   aws.String(filterNameAssociationMain),
				Values: []string{"true"},
			},
		},
	}
	ec2Output, err := c.ec2Client.DescribeRouteTables(ctx, &ec2Input, c.assumeRoleClient.OptionsFunc(input.RoleARN, input.Region))
	if err != nil {
		return GetMainRouteTableOutput{}, microerror.Mask(err)
	}

	if len(ec2Output.RouteTables) == 0 {
		return GetMainRouteTableOutput{}, microerror.Maskf(errors.MainRouteTableNotFoundError, "VPC %s has no main route table", input.VpcId)
	}
	if ec2Output.RouteTables[0].RouteTableId == nil {
		return GetMainRouteTableOutput{}, microerror.Maskf(errors.RouteTableIdNotSetError, "found main route table for VPC %s, but route table ID is not set", input.VpcId)
	}

	output = GetMainRouteTableOutput{
		RouteTableId: *ec2Output.RouteTables[0].RouteTableId,
	}
	return output, nil
}
