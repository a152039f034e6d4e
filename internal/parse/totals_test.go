package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExtractTotals", func() {
	When("totals are printed with a currency code", func() {
		var totals Totals

		BeforeEach(func() {
			totals = ExtractTotals([]string{
				"Net Value : TSH 3,484,144.00",
				"VAT : TSH 627,145.92",
				"Gross Value : TSH 4,111,289.92",
			})
		})

		It("strips grouping separators from the subtotal", func() {
			Expect(totals.Subtotal).To(Equal("3484144.00"))
		})

		It("extracts the tax", func() {
			Expect(totals.Tax).To(Equal("627145.92"))
		})

		It("extracts the total", func() {
			Expect(totals.Total).To(Equal("4111289.92"))
		})
	})

	When("synonymous labels compete", func() {
		It("prefers Net Value over Subtotal", func() {
			totals := ExtractTotals([]string{
				"Subtotal : 100.00",
				"Net Value : 200.00",
			})
			Expect(totals.Subtotal).To(Equal("200.00"))
		})
	})

	When("a field is not printed", func() {
		It("leaves the field empty rather than computing it", func() {
			totals := ExtractTotals([]string{"Net Value : 100,000.00"})
			Expect(totals.Subtotal).To(Equal("100000.00"))
			Expect(totals.Tax).To(BeEmpty())
			Expect(totals.Total).To(BeEmpty())
		})
	})

	When("no totals appear at all", func() {
		It("returns the zero value", func() {
			Expect(ExtractTotals([]string{"nothing monetary here"})).To(Equal(Totals{}))
		})
	})
})

var _ = Describe("normalizeDecimal", func() {
	DescribeTable("keeps plain fixed-point decimals and drops everything else",
		func(in, want string) {
			Expect(normalizeDecimal(in)).To(Equal(want))
		},
		Entry("grouped amount", "3,484,144.00", "3484144.00"),
		Entry("bare integer", "500", "500"),
		Entry("single decimal digit", "12.5", "12.5"),
		Entry("three decimal digits", "1.234", ""),
		Entry("letter contamination", "1O0.00", ""),
		Entry("empty", "", ""),
	)
})
