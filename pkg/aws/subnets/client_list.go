package subnets

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
	filterNameVpcID   = "vpc-id"
	filterNameState   = "state"
	filterNameNameTag = "tag:Name"
)

type ListSubnetsInput struct {
	RoleARN string
	Region  string
	VpcId   string

	// NamePattern filters subnets by their Name tag. EC2 evaluates the
	// glob server-side ('*' and '?'). Empty means all subnets in the VPC.
	NamePattern string
}

type ListSubnetsOutput []GetSubnetOutput

type GetSubnetOutput struct {
	SubnetId         string
	VpcId            string
	CidrBlock        string
	AvailabilityZone string
	Name             string
	State            SubnetState
	Tags             map[string]string
}

// SubnetIds returns the IDs of all listed subnets, in listing order.
func (o ListSubnetsOutput) SubnetIds() []string {
	subnetIds := make([]string, 0, len(o))
	for _, subnet := range o {
		subnetIds = append(subnetIds, subnet.SubnetId)
	}
	return subnetIds
}

func (c *client) List(ctx context.Context, input ListSubnetsInput) (output ListSubnetsOutput, err error) {
	logger := logr.FromContextOrDiscard(ctx)
	logger.Info("Started listing subnets")
	defer func() {
		if err == nil {
			logger.Info("Finished listing subnets", "count", len(output))
		} else {
			logger.Error(err, "Failed to list subnets")
		}
	}()

	if input.Region == "" {
		return ListSubnetsOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.Region must not be empty", input)
	}
	if input.VpcId == "" {
		return ListSubnetsOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.VpcId must not be empty", input)
	}

	filters := []ec2Types.Filter{
		{
			Name:   aws.String(filterNameState),
			Values: []string{string(ec2Types.SubnetStatePending), string(ec2Types.SubnetStateAvailable)},
		},
		{
			Name:   aws.String(filterNameVpcID),
			Values: []string{input.VpcId},
		},
	}
	if input.NamePattern != "" {
		filters = append(filters, ec2Types.Filter{
			Name:   aws.String(filterNameNameTag),
			Values: []string{input.NamePattern},
		})
	}

	output = ListSubnetsOutput{}

	var nextToken *string
	for {
		ec2Input := ec2.DescribeSubnetsInput{
			Filters:   filters,
			NextToken: nextToken,
		}

		var ec2Output *ec2.DescribeSubnetsOutput
		ec2Output, err = c.ec2Client.DescribeSubnets(ctx, &ec2Input, c.assumeRoleClient.OptionsFunc(input.RoleARN, input.Region))
		if err != nil {
			return ListSubnetsOutput{}, microerror.Mask(err)
		}

		for _, ec2Subnet := range ec2Output.Subnets {
			if ec2Subnet.SubnetId == nil {
				continue
			}

			var subnetState SubnetState
			switch ec2Subnet.State {
			case ec2Types.SubnetStatePending:
				subnetState = SubnetStatePending
			case ec2Types.SubnetStateAvailable:
				subnetState = SubnetStateAvailable
			default:
				subnetState = SubnetStateUnknown
			}

			subnetOutput := GetSubnetOutput{
				SubnetId:         *ec2Subnet.SubnetId,
				VpcId:            aws.ToString(ec2Subnet.VpcId),
				CidrBlock:        aws.ToString(ec2Subnet.CidrBlock),
				AvailabilityZone: aws.ToString(ec2Subnet.AvailabilityZone),
				Name:             tags.GetName(ec2Subnet.Tags),
				State:            subnetState,
				Tags:             tags.ToMap(ec2Subnet.Tags),
			}

			logger.Info("Found subnet matching filter", "subnet-id", subnetOutput.SubnetId, "name", subnetOutput.Name)
			output = append(output, subnetOutput)
		}

		if nextToken = ec2Output.NextToken; nextToken == nil {
			break
		}
	}

	return output, nil
}
