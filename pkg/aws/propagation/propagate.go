package propagation

import (
	"context"

	"github.com/giantswarm/microerror"
	"github.com/go-logr/logr"

	"github.com/giantswarm/aws-route-propagator/pkg/aws"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/routetables"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/subnets"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/vpc"
	"github.com/giantswarm/aws-route-propagator/pkg/errors"
)

// Propagate adds the peering route to the effective route table of every
// subnet matching the name pattern. The resolution phase is read-only and
// any error there aborts the run before the first mutating call. The
// creation phase is best-effort per table: a failure on one table is
// recorded in the returned Status and does not stop the remaining tables.
func (p *propagator) Propagate(ctx context.Context, request aws.CloudResourceRequest[Spec]) (status Status, err error) {
	logger := logr.FromContextOrDiscard(ctx)
	logger.Info("Started propagating peering route")
	defer func() {
		if err == nil {
			logger.Info("Finished propagating peering route")
		} else {
			logger.Error(err, "Failed to propagate peering route")
		}
	}()

	if request.Region == "" {
		return Status{}, microerror.Maskf(errors.InvalidConfigError, "%T.Region must not be empty", request)
	}
	if request.Spec.VpcId == "" {
		return Status{}, microerror.Maskf(errors.InvalidConfigError, "%T.VpcId must not be empty", request.Spec)
	}
	if request.Spec.DestinationCidrBlock == "" {
		return Status{}, microerror.Maskf(errors.InvalidConfigError, "%T.DestinationCidrBlock must not be empty", request.Spec)
	}
	if request.Spec.VpcPeeringConnectionId == "" {
		return Status{}, microerror.Maskf(errors.InvalidConfigError, "%T.VpcPeeringConnectionId must not be empty", request.Spec)
	}

	//
	// Validate that the VPC exists
	//
	{
		getVpcInput := vpc.GetVpcInput{
			RoleARN: request.RoleARN,
			Region:  request.Region,
			VpcId:   request.Spec.VpcId,
		}
		_, err = p.vpcClient.Get(ctx, getVpcInput)
		if err != nil {
			return Status{}, microerror.Mask(err)
		}
	}

	//
	// Resolve the VPC's main route table
	//
	{
		getMainInput := routetables.GetMainRouteTableInput{
			RoleARN: request.RoleARN,
			Region:  request.Region,
			VpcId:   request.Spec.VpcId,
		}
		var getMainOutput routetables.GetMainRouteTableOutput
		getMainOutput, err = p.routeTablesClient.GetMain(ctx, getMainInput)
		if err != nil {
			return Status{}, microerror.Mask(err)
		}
		status.MainRouteTableId = getMainOutput.RouteTableId
	}

	//
	// Resolve subnets matching the name pattern
	//
	{
		listSubnetsInput := subnets.ListSubnetsInput{
			RoleARN:     request.RoleARN,
			Region:      request.Region,
			VpcId:       request.Spec.VpcId,
			NamePattern: request.Spec.SubnetNamePattern,
		}
		var listSubnetsOutput subnets.ListSubnetsOutput
		listSubnetsOutput, err = p.subnetsClient.List(ctx, listSubnetsInput)
		if err != nil {
			return Status{}, microerror.Mask(err)
		}
		status.MatchedSubnetIds = listSubnetsOutput.SubnetIds()
	}

	// No matching subnets is not an error, there is just nothing to do.
	if len(status.MatchedSubnetIds) == 0 {
		logger.Info("No subnets matched the name pattern, nothing to do",
			"vpc-id", request.Spec.VpcId,
			"subnet-name-pattern", request.Spec.SubnetNamePattern)
		return status, nil
	}

	//
	// Resolve explicit subnet associations, one listing for the whole VPC
	//
	var associations map[string]string
	{
		listRouteTablesInput := routetables.ListRouteTablesInput{
			RoleARN: request.RoleARN,
			Region:  request.Region,
			VpcId:   request.Spec.VpcId,
		}
		var listRouteTablesOutput routetables.ListRouteTablesOutput
		listRouteTablesOutput, err = p.routeTablesClient.List(ctx, listRouteTablesInput)
		if err != nil {
			return Status{}, microerror.Mask(err)
		}
		associations = listRouteTablesOutput.SubnetAssociations()
	}

	targets := computeTargets(status.MatchedSubnetIds, associations, status.MainRouteTableId)
	logger.Info("Computed target route tables",
		"matched-subnets", len(status.MatchedSubnetIds),
		"target-route-tables", len(targets))

	//
	// Create the peering route on every target table, best-effort
	//
	for _, routeTableId := range targets {
		if request.Spec.DryRun {
			logger.Info("Would create route (dry run)",
				"route-table-id", routeTableId,
				"destination-cidr-block", request.Spec.DestinationCidrBlock,
				"vpc-peering-connection-id", request.Spec.VpcPeeringConnectionId)
			status.RouteTables = append(status.RouteTables, RouteTableStatus{
				RouteTableId: routeTableId,
				Result:       RouteResultPlanned,
			})
			continue
		}

		createRouteInput := routetables.CreateRouteInput{
			RoleARN:                request.RoleARN,
			Region:                 request.Region,
			RouteTableId:           routeTableId,
			DestinationCidrBlock:   request.Spec.DestinationCidrBlock,
			VpcPeeringConnectionId: request.Spec.VpcPeeringConnectionId,
		}
		createRouteOutput, createErr := p.routeTablesClient.CreateRoute(ctx, createRouteInput)
		if createErr != nil {
			logger.Error(createErr, "Failed to create route, continuing with remaining route tables",
				"route-table-id", routeTableId)
			status.RouteTables = append(status.RouteTables, RouteTableStatus{
				RouteTableId: routeTableId,
				Result:       RouteResultFailed,
				Err:          createErr,
			})
			continue
		}

		result := RouteResultCreated
		if createRouteOutput.Status == routetables.RouteStatusAlreadyExists {
			result = RouteResultAlreadyExists
		}
		status.RouteTables = append(status.RouteTables, RouteTableStatus{
			RouteTableId: routeTableId,
			Result:       result,
		})
	}

	return status, nil
}
