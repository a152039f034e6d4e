package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExtractHeaderFields", func() {
	When("fields are printed with inline labels", func() {
		var lines []string

		BeforeEach(func() {
			lines = []string{
				"Proforma Invoice",
				"PI No : PI-1765632",
				"Code No : SBL-044",
				"Date : 12/03/2024",
				"Cust Ref : FOR T 964 DNA",
			}
		})

		It("extracts the invoice number", func() {
			invoiceNo, _, _, _ := ExtractHeaderFields(lines)
			Expect(invoiceNo).To(Equal("PI-1765632"))
		})

		It("extracts the code number", func() {
			_, codeNo, _, _ := ExtractHeaderFields(lines)
			Expect(codeNo).To(Equal("SBL-044"))
		})

		It("keeps the date verbatim", func() {
			_, _, date, _ := ExtractHeaderFields(lines)
			Expect(date).To(Equal("12/03/2024"))
		})

		It("extracts the customer reference", func() {
			_, _, _, ref := ExtractHeaderFields(lines)
			Expect(ref).To(Equal("FOR T 964 DNA"))
		})
	})

	When("the label and value are split across lines", func() {
		It("takes the invoice number from the following line", func() {
			invoiceNo, _, _, _ := ExtractHeaderFields([]string{"PI No :", "PI-9981"})
			Expect(invoiceNo).To(Equal("PI-9981"))
		})

		It("takes the date from the following line", func() {
			_, _, date, _ := ExtractHeaderFields([]string{"Date :", "12/03/2024"})
			Expect(date).To(Equal("12/03/2024"))
		})
	})

	When("the reference runs into trailing date labels", func() {
		It("cuts the reference before the labels", func() {
			_, _, _, ref := ExtractHeaderFields([]string{"Cust Ref : FOR T 964 DNA Del. Date 15/03/2024"})
			Expect(ref).To(Equal("FOR T 964 DNA"))
		})
	})

	When("no labeled fields are present", func() {
		It("leaves every field empty", func() {
			invoiceNo, codeNo, date, ref := ExtractHeaderFields([]string{"some unrelated line"})
			Expect(invoiceNo).To(BeEmpty())
			Expect(codeNo).To(BeEmpty())
			Expect(date).To(BeEmpty())
			Expect(ref).To(BeEmpty())
		})
	})
})

var _ = Describe("validCodeNumber", func() {
	DescribeTable("accepts account-code shapes and rejects look-alikes",
		func(candidate string, want bool) {
			Expect(validCodeNumber(candidate)).To(Equal(want))
		},
		Entry("alphanumeric customer code", "SBL-044", true),
		Entry("short letter-digit code", "C123", true),
		Entry("date value", "12/03/2024", false),
		Entry("large bare number", "9999999", false),
		Entry("stop word", "Total", false),
		Entry("page artifact", "page2", false),
		Entry("single character", "A", false),
	)
})
