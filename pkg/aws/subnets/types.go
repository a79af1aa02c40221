package subnets

type SubnetState string

// Enum values for SubnetState
const (
	SubnetStatePending   SubnetState = "pending"
	SubnetStateAvailable SubnetState = "available"
	SubnetStateUnknown   SubnetState = "unknown"
)
