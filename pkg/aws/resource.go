package aws

// CloudResourceRequest carries the AWS call context for a resource
// operation. RoleARN is optional; when set, every API call assumes that
// role, otherwise the base credentials are used directly.
type CloudResourceRequest[TResourceSpec any] struct {
	RoleARN string
	Region  string
	Spec    TResourceSpec
}
