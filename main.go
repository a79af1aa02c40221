package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/giantswarm/microerror"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yamlsrc "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	pkgaws "github.com/giantswarm/aws-route-propagator/pkg/aws"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/assumerole"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/propagation"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/routetables"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/subnets"
	"github.com/giantswarm/aws-route-propagator/pkg/aws/vpc"
	"github.com/giantswarm/aws-route-propagator/pkg/errors"
	"github.com/giantswarm/aws-route-propagator/pkg/project"
)

const (
	envPrefix         = "ROUTE_PROPAGATOR_"
	configPathEnvVar  = envPrefix + "CONFIG"
	defaultConfigPath = "route-propagator.yaml"
)

func main() {
	err := mainE(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", microerror.Pretty(err, false))
		os.Exit(1)
	}
}

func mainE(ctx context.Context) error {
	configPath := os.Getenv(configPathEnvVar)
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Flag values resolve from the command line, then the environment,
	// then the optional YAML config file.
	sources := func(flagName string) cli.ValueSourceChain {
		envVar := envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
		return cli.NewValueSourceChain(
			cli.EnvVar(envVar),
			yamlsrc.YAML(flagName, altsrc.StringSourcer(configPath)),
		)
	}

	app := &cli.Command{
		Name:    project.Name(),
		Usage:   project.Description(),
		Version: project.Version(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "vpc-id",
				Usage:   "VPC whose route tables receive the peering route",
				Sources: sources("vpc-id"),
			},
			&cli.StringFlag{
				Name:    "region",
				Usage:   "AWS region, defaults to the profile's region",
				Sources: sources("region"),
			},
			&cli.StringFlag{
				Name:    "destination-cidr",
				Usage:   "destination CIDR block of the route, typically the peer VPC's CIDR",
				Sources: sources("destination-cidr"),
			},
			&cli.StringFlag{
				Name:    "peering-connection-id",
				Usage:   "VPC peering connection the route targets",
				Sources: sources("peering-connection-id"),
			},
			&cli.StringFlag{
				Name:    "subnet-name-pattern",
				Usage:   "Name tag glob selecting the subnets to route",
				Value:   "*",
				Sources: sources("subnet-name-pattern"),
			},
			&cli.StringFlag{
				Name:    "profile",
				Usage:   "AWS shared config profile, passed to the SDK explicitly",
				Sources: sources("profile"),
			},
			&cli.StringFlag{
				Name:    "role-arn",
				Usage:   "IAM role to assume for all EC2 calls",
				Sources: sources("role-arn"),
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit non-zero when any route table fails",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "resolve target route tables without creating routes",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}

	return app.Run(ctx, os.Args)
}

func run(ctx context.Context, cmd *cli.Command) error {
	zapConfig := zap.NewDevelopmentConfig()
	if !cmd.Bool("debug") {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	zapLogger, err := zapConfig.Build()
	if err != nil {
		return microerror.Mask(err)
	}
	defer func() { _ = zapLogger.Sync() }()
	logger := zapr.NewLogger(zapLogger)
	ctx = logr.NewContext(ctx, logger)

	for _, flagName := range []string{"vpc-id", "destination-cidr", "peering-connection-id"} {
		if cmd.String(flagName) == "" {
			return microerror.Maskf(errors.InvalidFlagError, "--%s must not be empty", flagName)
		}
	}

	awsConfig, err := pkgaws.LoadConfig(ctx, cmd.String("profile"), cmd.String("region"))
	if err != nil {
		return microerror.Mask(err)
	}
	if awsConfig.Region == "" {
		return microerror.Maskf(errors.InvalidFlagError, "region must be set via --region, the profile, or the environment")
	}

	ec2Client := ec2.NewFromConfig(awsConfig)
	stsClient := sts.NewFromConfig(awsConfig)

	assumeRoleClient, err := assumerole.NewClient(stsClient)
	if err != nil {
		return microerror.Mask(err)
	}
	vpcClient, err := vpc.NewClient(ec2Client, assumeRoleClient)
	if err != nil {
		return microerror.Mask(err)
	}
	subnetsClient, err := subnets.NewClient(ec2Client, assumeRoleClient)
	if err != nil {
		return microerror.Mask(err)
	}
	routeTablesClient, err := routetables.NewClient(ec2Client, assumeRoleClient)
	if err != nil {
		return microerror.Mask(err)
	}
	propagator, err := propagation.NewPropagator(vpcClient, subnetsClient, routeTablesClient)
	if err != nil {
		return microerror.Mask(err)
	}

	request := pkgaws.CloudResourceRequest[propagation.Spec]{
		RoleARN: cmd.String("role-arn"),
		Region:  awsConfig.Region,
		Spec: propagation.Spec{
			VpcId:                  cmd.String("vpc-id"),
			SubnetNamePattern:      cmd.String("subnet-name-pattern"),
			DestinationCidrBlock:   cmd.String("destination-cidr"),
			VpcPeeringConnectionId: cmd.String("peering-connection-id"),
			DryRun:                 cmd.Bool("dry-run"),
		},
	}

	status, err := propagator.Propagate(ctx, request)
	if err != nil {
		return microerror.Mask(err)
	}

	printSummary(status)

	if cmd.Bool("strict") && status.FailedCount() > 0 {
		return microerror.Maskf(errors.RoutePropagationFailedError, "%d of %d route tables failed", status.FailedCount(), len(status.RouteTables))
	}
	return nil
}

func printSummary(status propagation.Status) {
	if len(status.MatchedSubnetIds) == 0 {
		fmt.Println("no subnets matched, nothing to do")
		return
	}

	fmt.Printf("main route table: %s\n", status.MainRouteTableId)
	fmt.Printf("matched subnets:  %d\n", len(status.MatchedSubnetIds))
	for _, routeTable := range status.RouteTables {
		if routeTable.Result == propagation.RouteResultFailed {
			fmt.Fprintf(os.Stderr, "%s: FAILED: %s\n", routeTable.RouteTableId, routeTable.Err)
			continue
		}
		fmt.Printf("%s: %s\n", routeTable.RouteTableId, routeTable.Result)
	}
}
