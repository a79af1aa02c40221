package routetables

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/giantswarm/microerror"
	"github.com/go-logr/logr"

	"github.com/giantswarm/aws-route-propagator/pkg/aws/tags"
	"github.com/giantswarm/aws-route-propagator/pkg/errors"
)

const (
	filterNameVpcID           = "vpc-id"
	filterNameAssociationMain = "association.main"
)

type ListRouteTablesInput struct {
	RoleARN string
	Region  string
	VpcId   string
}

type ListRouteTablesOutput []RouteTableOutput

type RouteTableOutput struct {
	RouteTableId      string
	AssociatedSubnets []RouteTableAssociation
	Tags              map[string]string
}

// SubnetAssociations extracts every explicit (subnet ID -> route table ID)
// association across all listed tables in one pass. Subnets on the main
// table are absent from the result.
func (o ListRouteTablesOutput) SubnetAssociations() map[string]string {
	associations := map[string]string{}
	for _, routeTable := range o {
		for _, association := range routeTable.AssociatedSubnets {
			if association.Main || association.SubnetId == "" {
				continue
			}
			associations[association.SubnetId] = routeTable.RouteTableId
		}
	}
	return associations
}

func (c *client) List(ctx context.Context, input ListRouteTablesInput) (output ListRouteTablesOutput, err error) {
	logger := logr.FromContextOrDiscard(ctx)
	logger.Info("Started listing route tables")
	defer func() {
		if err == nil {
			logger.Info("Finished listing route tables", "count", len(output))
		} else {
			logger.Error(err, "Failed to list route tables")
		}
	}()

	if input.Region == "" {
		return ListRouteTablesOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.Region must not be empty", input)
	}
	if input.VpcId == "" {
		return ListRouteTablesOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.VpcId must not be empty", input)
	}

	output = ListRouteTablesOutput{}

	var nextToken *string
	for {
		ec2Input := ec2.DescribeRouteTablesInput{
			Filters: []ec2Types.Filter{
				{
					Name:   aws.String(filterNameVpcID),
					Values: []string{input.VpcId},
				},
			},
			NextToken: nextToken,
		}
		var ec2Output *ec2.DescribeRouteTablesOutput
		ec2Output, err = c.ec2Client.DescribeRouteTables(ctx, &ec2Input, c.assumeRoleClient.OptionsFunc(input.RoleARN, input.Region))
		if err != nil {
			return ListRouteTablesOutput{}, microerror.Mask(err)
		}

		for _, ec2RouteTable := range ec2Output.RouteTables {
			if ec2RouteTable.RouteTableId == nil {
				continue
			}

			routeTableOutput := RouteTableOutput{
				RouteTableId: *ec2RouteTable.RouteTableId,
				Tags:         tags.ToMap(ec2RouteTable.Tags),
			}

			for _, ec2Association := range ec2RouteTable.Associations {
				routeTableAssociation := RouteTableAssociation{
					AssociationId: aws.ToString(ec2Association.RouteTableAssociationId),
					SubnetId:      aws.ToString(ec2Association.SubnetId),
					Main:          aws.ToBool(ec2Association.Main),
				}

				if ec2Association.AssociationState != nil {
					routeTableAssociation.AssociationStateCode = AssociationStateCode(ec2Association.AssociationState.State)
				} else {
					routeTableAssociation.AssociationStateCode = AssociationStateCodeUnknown
				}

				routeTableOutput.AssociatedSubnets = append(routeTableOutput.AssociatedSubnets, routeTableAssociation)
			}

			output = append(output, routeTableOutput)
		}

		if nextToken = ec2Output.NextToken; nextToken == nil {
			break
		}
	}

	return output, nil
}
