package propagation

import (
	"context"

	"github.com/giantswarm/microerror"

	"github.com/giantswarm/aws-route-propagator/pkg/aws"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/routetables"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/subnets"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/vpc"
	"github.com/giantswarm/aws-route-propagator/pkg/errors"
)

type Propagator interface {
	Propagate(ctx context.Context, request aws.CloudResourceRequest[Spec]) (Status, error)
}

type Spec struct {
	// VpcId is the VPC whose route tables receive the peering route.
	VpcId string

	// SubnetNamePattern selects the subnets whose effective route tables
	// are updated. EC2 Name-tag glob.
	SubnetNamePattern string

	// DestinationCidrBlock is the route destination, typically the peer
	// VPC's CIDR.
	DestinationCidrBlock string

	// VpcPeeringConnectionId is the route target.
	VpcPeeringConnectionId string

	// DryRun resolves and reports target tables without creating routes.
	DryRun bool
}

type RouteResult string

const (
	RouteResultCreated       RouteResult = "created"
	RouteResultAlreadyExists RouteResult = "already-exists"
	RouteResultPlanned       RouteResult = "planned"
	RouteResultFailed        RouteResult = "failed"
)

type RouteTableStatus struct {
	RouteTableId string
	Result       RouteResult

	// Err is set only for RouteResultFailed.
	Err error
}

type Status struct {
	MainRouteTableId string
	MatchedSubnetIds []string
	RouteTables      []RouteTableStatus
}

// FailedCount returns the number of target tables whose route creation
// failed.
func (s Status) FailedCount() int {
	failed := 0
	for _, routeTable := range s.RouteTables {
		if routeTable.Result == RouteResultFailed {
			failed++
		}
	}
	return failed
}

func NewPropagator(vpcClient vpc.Client, subnetsClient subnets.Client, routeTablesClient routetables.Client) (Propagator, error) {
	if vpcClient == nil {
		return nil, microerror.Maskf(errors.InvalidConfigError, "vpcClient must not be empty")
	}
	if subnetsClient == nil {
		return nil, microerror.Maskf(errors.InvalidConfigError, "subnetsClient must not be empty")
	}
	if routeTablesClient == nil {
		return nil, microerror.Maskf(errors.InvalidConfigError, "routeTablesClient must not be empty")
	}

	return &propagator{
		vpcClient:         vpcClient,
		subnetsClient:     subnetsClient,
		routeTablesClient: routeTablesClient,
	}, nil
}

type propagator struct {
	vpcClient         vpc.Client
	subnetsClient     subnets.Client
	routeTablesClient routetables.Client
}
