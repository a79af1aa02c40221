package vpc

type VpcState string

// Enum values for VpcState
const (
	VpcStatePending   VpcState = "pending"
	VpcStateAvailable VpcState = "available"
	VpcStateUnknown   VpcState = "unknown"
)
