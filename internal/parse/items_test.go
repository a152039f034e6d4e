package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const tableHeader = "S No Item Code Description Unit Qty Rate Value"

var _ = Describe("ParsePageItems", func() {
	When("rows follow the unit-then-quantity layout", func() {
		var items []LineItem

		BeforeEach(func() {
			items = ParsePageItems([]string{
				tableHeader,
				"1 2132004135 WHEEL RIM 22.5 PCS 4 850,668.00 3,402,672.00",
				"2 3373119002 VALVE EXTENSION PCS 4 1,300.00 5,200.00",
				"Net Value : TSH 3,484,144.00",
			})
		})

		It("parses every row before the totals line", func() {
			Expect(items).To(HaveLen(2))
		})

		It("captures code, description, unit and quantity", func() {
			Expect(items[0].ItemCode).To(Equal("2132004135"))
			Expect(items[0].Description).To(Equal("WHEEL RIM 22.5"))
			Expect(items[0].Unit).To(Equal("PCS"))
			Expect(items[0].Quantity).To(Equal(4))
		})

		It("keeps rate and value as verbatim decimals without separators", func() {
			Expect(items[0].Rate).To(Equal("850668.00"))
			Expect(items[0].Value).To(Equal("3402672.00"))
		})
	})

	When("rows print quantity before the unit", func() {
		It("still parses the row", func() {
			items := ParsePageItems([]string{
				tableHeader,
				"1 41003 STEERING AXLE ALIGNMENT 1 NOS 100,000.00 100,000.00",
			})
			Expect(items).To(HaveLen(1))
			Expect(items[0].ItemCode).To(Equal("41003"))
			Expect(items[0].Description).To(Equal("STEERING AXLE ALIGNMENT"))
			Expect(items[0].Unit).To(Equal("NOS"))
			Expect(items[0].Quantity).To(Equal(1))
			Expect(items[0].Rate).To(Equal("100000.00"))
			Expect(items[0].Value).To(Equal("100000.00"))
		})
	})

	When("a numeric column is malformed", func() {
		It("drops the number instead of guessing", func() {
			items := ParsePageItems([]string{
				tableHeader,
				"2 41007 BRAKE DRUM SKIMMING 1 NOS 1O0,000.00",
			})
			Expect(items).To(HaveLen(1))
			Expect(items[0].ItemCode).To(Equal("41007"))
			Expect(items[0].Description).To(Equal("BRAKE DRUM SKIMMING"))
			Expect(items[0].Unit).To(Equal("NOS"))
			Expect(items[0].Quantity).To(Equal(1))
			Expect(items[0].Rate).To(BeEmpty())
			Expect(items[0].Value).To(BeEmpty())
		})
	})

	When("a row carries a single decimal column", func() {
		It("assigns it to value, not rate", func() {
			items := ParsePageItems([]string{
				tableHeader,
				"3 WELDING SERVICE CHARGE 500.00",
			})
			Expect(items).To(HaveLen(1))
			Expect(items[0].Description).To(Equal("WELDING SERVICE CHARGE"))
			Expect(items[0].Unit).To(Equal("PCS"))
			Expect(items[0].Quantity).To(Equal(1))
			Expect(items[0].Rate).To(BeEmpty())
			Expect(items[0].Value).To(Equal("500.00"))
		})
	})

	When("boilerplate bleeds into a row", func() {
		It("scrubs it out of the description", func() {
			items := ParsePageItems([]string{
				tableHeader,
				"1 41003 CLUTCH PLATE 2 10,000.00 20,000.00 Discount offer",
			})
			Expect(items).To(HaveLen(1))
			Expect(items[0].Description).To(Equal("CLUTCH PLATE"))
			Expect(items[0].Quantity).To(Equal(2))
			Expect(items[0].Rate).To(Equal("10000.00"))
			Expect(items[0].Value).To(Equal("20000.00"))
		})
	})

	When("a description wraps across lines", func() {
		It("appends continuation lines but skips repeated header fragments", func() {
			items := ParsePageItems([]string{
				tableHeader,
				"1 41003 BRAKE DRUM",
				"Description Qty Rate Value",
				"REPAIR KIT",
			})
			Expect(items).To(HaveLen(1))
			Expect(items[0].Description).To(Equal("BRAKE DRUM REPAIR KIT"))
		})
	})

	When("the only header-like line belongs to the customer block", func() {
		It("finds no table at all", func() {
			items := ParsePageItems([]string{
				"Customer Name Code No Description Qty Value",
				"1 41003 WHEEL RIM PCS 1 100.00 100.00",
			})
			Expect(items).To(BeNil())
		})
	})

	When("the page has no table header", func() {
		It("yields no items", func() {
			Expect(ParsePageItems([]string{"just prose", "more prose"})).To(BeNil())
		})
	})

	When("customer info lines sit between rows", func() {
		It("skips them without ending the table", func() {
			items := ParsePageItems([]string{
				tableHeader,
				"1 41003 OIL SEAL PCS 2 5,000.00 10,000.00",
				"P.O. Box 9013",
				"2 41007 GASKET PCS 1 2,500.00 2,500.00",
			})
			Expect(items).To(HaveLen(2))
			Expect(items[1].Description).To(Equal("GASKET"))
		})
	})
})
