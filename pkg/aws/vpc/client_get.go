package vpc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/giantswarm/microerror"
	"github.com/go-logr/logr"

	"github.com/giantswarm/aws-route-propagator/pkg/aws/tags"
	"github.com/giantswarm/aws-route-propagator/pkg/errors"
)

type GetVpcInput struct {
	RoleARN string
	Region  string
	VpcId   string
}

type GetVpcOutput struct {
	VpcId     string
	CidrBlock string
	State     VpcState
	Tags      map[string]string
}

func (c *client) Get(ctx context.Context, input GetVpcInput) (output GetVpcOutput, err error) {
	logger := logr.FromContextOrDiscard(ctx)
	logger.Info("Started getting VPC")
	defer func() {
		if err == nil {
			logger.Info("Finished getting VPC")
		} else {
			logger.Error(err, "Failed to get VPC")
		}
	}()

	if input.Region == "" {
		return GetVpcOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.Region must not be empty", input)
	}
	if input.VpcId == "" {
		return GetVpcOutput{}, microerror.Maskf(errors.InvalidConfigError, "%T.VpcId must not be empty", input)
	}

	ec2Input := ec2.DescribeVpcsInput{
		VpcIds: []string{input.VpcId},
	}

	ec2Output, err := c.ec2Client.DescribeVpcs(ctx, &ec2Input, c.assumeRoleClient.OptionsFunc(input.RoleARN, input.Region))
	if err != nil {
		// DescribeVpcs fails with InvalidVpcID.NotFound rather than
		// returning an empty list when the ID is unknown.
		if errors.AWSErrorCode(err) == "InvalidVpcID.NotFound" {
			return GetVpcOutput{}, microerror.Maskf(errors.VpcNotFoundError, "could not find VPC %q", input.VpcId)
		}
		return GetVpcOutput{}, microerror.Mask(err)
	}

	if len(ec2Output.Vpcs) == 0 {
		return GetVpcOutput{}, microerror.Maskf(errors.VpcNotFoundError, "could not find VPC %q", input.VpcId)
	}

	output = GetVpcOutput{
		VpcId:     *ec2Output.Vpcs[0].VpcId,
		CidrBlock: *ec2Output.Vpcs[0].CidrBlock,
		State:     VpcState(ec2Output.Vpcs[0].State),
		Tags:      tags.ToMap(ec2Output.Vpcs[0].Tags),
	}
	logger.Info("Got existing VPC", "vpc-id", output.VpcId, "cidr-block", output.CidrBlock)

	return output, nil
}
