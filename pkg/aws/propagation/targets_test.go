package propagation

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("computeTargets", func() {
	const mainRouteTableId = "rtb-main"

	It("falls back to the main route table for subnets without an explicit association", func() {
		targets := computeTargets([]string{"subnet-1", "subnet-2"}, map[string]string{}, mainRouteTableId)
		Expect(targets).To(Equal([]string{mainRouteTableId}))
	})

	It("uses the explicit association when one exists", func() {
		associations := map[string]string{
			"subnet-1": "rtb-custom",
		}
		targets := computeTargets([]string{"subnet-1"}, associations, mainRouteTableId)
		Expect(targets).To(Equal([]string{"rtb-custom"}))
	})

	It("treats an empty association value as no association", func() {
		associations := map[string]string{
			"subnet-1": "",
		}
		targets := computeTargets([]string{"subnet-1"}, associations, mainRouteTableId)
		Expect(targets).To(Equal([]string{mainRouteTableId}))
	})

	It("deduplicates tables shared by multiple subnets", func() {
		associations := map[string]string{
			"subnet-1": "rtb-custom",
			"subnet-2": "rtb-custom",
		}
		targets := computeTargets([]string{"subnet-1", "subnet-2", "subnet-3"}, associations, mainRouteTableId)
		Expect(targets).To(HaveLen(2))
		Expect(targets).To(Equal([]string{"rtb-custom", mainRouteTableId}))
	})

	It("returns an empty set for no subnets", func() {
		targets := computeTargets(nil, map[string]string{}, mainRouteTableId)
		Expect(targets).To(BeEmpty())
	})

	It("returns targets in sorted order", func() {
		associations := map[string]string{
			"subnet-1": "rtb-zzz",
			"subnet-2": "rtb-aaa",
		}
		targets := computeTargets([]string{"subnet-1", "subnet-2"}, associations, mainRouteTableId)
		Expect(targets).To(Equal([]string{"rtb-aaa", "rtb-zzz"}))
	})
})
