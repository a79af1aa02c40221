package errors

import (
	"github.com/giantswarm/microerror"
)

var InvalidConfigError = &microerror.Error{
	Kind: "InvalidConfigError",
}

// IsInvalidConfig asserts InvalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == InvalidConfigError
}

var InvalidFlagError = &microerror.Error{
	Kind: "InvalidFlagError",
}

// IsInvalidFlag asserts InvalidFlagError.
func IsInvalidFlag(err error) bool {
	return microerror.Cause(err) == InvalidFlagError
}
