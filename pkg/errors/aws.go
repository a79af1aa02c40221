package errors

import (
	stderrors "errors"

	"github.com/aws/smithy-go"
	"github.com/giantswarm/microerror"
)

// RouteAlreadyExistsCode is the EC2 API error code returned by
// ec2:CreateRoute when the destination CIDR already has a route in the
// table.
const RouteAlreadyExistsCode = "RouteAlreadyExists"

var VpcNotFoundError = &microerror.Error{
	Kind: "VpcNotFoundError",
}

// IsVpcNotFound asserts VpcNotFoundError.
func IsVpcNotFound(err error) bool {
	return microerror.Cause(err) == VpcNotFoundError
}

var MainRouteTableNotFoundError = &microerror.Error{
	Kind: "MainRouteTableNotFoundError",
}

// IsMainRouteTableNotFound asserts MainRouteTableNotFoundError.
func IsMainRouteTableNotFound(err error) bool {
	return microerror.Cause(err) == MainRouteTableNotFoundError
}

var RouteTableIdNotSetError = &microerror.Error{
	Kind: "RouteTableIdNotSetError",
}

// IsRouteTableIdNotSet asserts RouteTableIdNotSetError.
func IsRouteTableIdNotSet(err error) bool {
	return microerror.Cause(err) == RouteTableIdNotSetError
}

var RoutePropagationFailedError = &microerror.Error{
	Kind: "RoutePropagationFailedError",
}

// IsRoutePropagationFailed asserts RoutePropagationFailedError.
func IsRoutePropagationFailed(err error) bool {
	return microerror.Cause(err) == RoutePropagationFailedError
}

// AWSErrorCode returns the API error code from an AWS SDK error chain, or
// an empty string when the error is not an API error.
func AWSErrorCode(err error) string {
	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsRouteAlreadyExists asserts the EC2 RouteAlreadyExists conflict.
func IsRouteAlreadyExists(err error) bool {
	return AWSErrorCode(err) == RouteAlreadyExistsCode
}
