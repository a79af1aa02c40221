package errors

import (
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/giantswarm/microerror"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AWS error classification", func() {
	It("extracts the API error code", func() {
		err := &smithy.GenericAPIError{Code: RouteAlreadyExistsCode, Message: "route already exists"}
		Expect(AWSErrorCode(err)).To(Equal(RouteAlreadyExistsCode))
	})

	It("extracts the code through plain wrapping", func() {
		err := fmt.Errorf("creating route: %w", &smithy.GenericAPIError{Code: RouteAlreadyExistsCode})
		Expect(IsRouteAlreadyExists(err)).To(BeTrue())
	})

	It("returns an empty code for non-API errors", func() {
		Expect(AWSErrorCode(fmt.Errorf("boom"))).To(BeEmpty())
		Expect(IsRouteAlreadyExists(nil)).To(BeFalse())
	})

	It("asserts kind errors through microerror masking", func() {
		err := microerror.Mask(MainRouteTableNotFoundError)
		Expect(IsMainRouteTableNotFound(err)).To(BeTrue())
		Expect(IsVpcNotFound(err)).To(BeFalse())
	})
})
