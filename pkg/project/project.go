package project

var (
	description = "CLI that propagates a VPC peering route into the effective route tables of matching subnets."
	gitSHA      = "n/a"
	name        = "aws-route-propagator"
	source      = "https://github.com/giantswarm/aws-route-propagator"
	version     = "0.1.0-dev"
)

func Description() string {
	return description
}

func GitSHA() string {
	return gitSHA
}

func Name() string {
	return name
}

func Source() string {
	return source
}

func Version() string {
	return version
}
