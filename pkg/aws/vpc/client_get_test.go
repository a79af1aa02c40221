package vpc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/giantswarm/aws-route-propagator/pkg/errors"
)

type noopAssumeRoleClient struct{}

func (noopAssumeRoleClient) OptionsFunc(_, _ string) func(o *ec2.Options) {
	return func(o *ec2.Options) {}
}

type fakeEC2Client struct {
	describeVpcsOutput *ec2.DescribeVpcsOutput
	describeVpcsErr    error
}

func (f *fakeEC2Client) DescribeVpcs(_ context.Context, _ *ec2.DescribeVpcsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	if f.describeVpcsErr != nil {
		return nil, f.describeVpcsErr
	}
	if f.describeVpcsOutput == nil {
		return &ec2.DescribeVpcsOutput{}, nil
	}
	return f.describeVpcsOutput, nil
}

func (f *fakeEC2Client) DescribeSubnets(_ context.Context, _ *ec2.DescribeSubnetsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	return &ec2.DescribeSubnetsOutput{}, nil
}

func (f *fakeEC2Client) DescribeRouteTables(_ context.Context, _ *ec2.DescribeRouteTablesInput, _ ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error) {
	return &ec2.DescribeRouteTablesOutput{}, nil
}

func (f *fakeEC2Client) CreateRoute(_ context.Context, _ *ec2.CreateRouteInput, _ ...func(*ec2.Options)) (*ec2.CreateRouteOutput, error) {
	return &ec2.CreateRouteOutput{}, nil
}

var _ = Describe("Get", func() {
	const vpcId = "vpc-0a1b2c3d"

	var (
		ec2Client *fakeEC2Client
		client    Client
	)

	BeforeEach(func() {
		ec2Client = &fakeEC2Client{}

		var err error
		client, err = NewClient(ec2Client, noopAssumeRoleClient{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns the VPC details", func() {
		ec2Client.describeVpcsOutput = &ec2.DescribeVpcsOutput{
			Vpcs: []ec2Types.Vpc{
				{
					VpcId:     aws.String(vpcId),
					CidrBlock: aws.String("10.0.0.0/16"),
					State:     ec2Types.VpcStateAvailable,
				},
			},
		}

		output, err := client.Get(context.Background(), GetVpcInput{Region: "eu-west-1", VpcId: vpcId})
		Expect(err).NotTo(HaveOccurred())
		Expect(output.VpcId).To(Equal(vpcId))
		Expect(output.CidrBlock).To(Equal("10.0.0.0/16"))
		Expect(output.State).To(Equal(VpcStateAvailable))
	})

	It("returns VpcNotFoundError when the listing is empty", func() {
		_, err := client.Get(context.Background(), GetVpcInput{Region: "eu-west-1", VpcId: vpcId})
		Expect(errors.IsVpcNotFound(err)).To(BeTrue())
	})

	It("maps InvalidVpcID.NotFound to VpcNotFoundError", func() {
		ec2Client.describeVpcsErr = &smithy.GenericAPIError{
			Code:    "InvalidVpcID.NotFound",
			Message: "The vpc ID does not exist",
		}

		_, err := client.Get(context.Background(), GetVpcInput{Region: "eu-west-1", VpcId: vpcId})
		Expect(errors.IsVpcNotFound(err)).To(BeTrue())
	})

	It("requires a VPC ID", func() {
		_, err := client.Get(context.Background(), GetVpcInput{Region: "eu-west-1"})
		Expect(errors.IsInvalidConfig(err)).To(BeTrue())
	})
})
