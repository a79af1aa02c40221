package routetables

type AssociationStateCode string

// Enum values for RouteTableAssociationStateCode
const (
	AssociationStateCodeAssociating    AssociationStateCode = "associating"
	AssociationStateCodeAssociated     AssociationStateCode = "associated"
	AssociationStateCodeDisassociating AssociationStateCode = "disassociating"
	AssociationStateCodeDisassociated  AssociationStateCode = "disassociated"
	AssociationStateCodeFailed         AssociationStateCode = "failed"
	AssociationStateCodeUnknown        AssociationStateCode = "unknown"
)

type RouteTableAssociation struct {
	AssociationId        string
	SubnetId             string
	AssociationStateCode AssociationStateCode

	// Main marks the implicit VPC-wide association. Main associations
	// carry no subnet ID.
	Main bool
}

type RouteStatus string

// Outcome of an idempotent route creation.
const (
	RouteStatusCreated       RouteStatus = "created"
	RouteStatusAlreadyExists RouteStatus = "already-exists"
)
