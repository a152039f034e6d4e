package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func proformaFixture() []RawPage {
	return []RawPage{{PageNumber: 1, Lines: []string{
		"SUPERDOLL TRAILER MANUFACTURE CO. LTD",
		"P.O. Box 16541, Dar es Salaam",
		"Tel: +255-22-2865432 Fax: +255-22-2865433",
		"Proforma Invoice",
		"PI No : PI-1765632",
		"Code No : SBL-044",
		"Date : 12/03/2024",
		"Customer Name : SERENGETI BREWERIES LIMITED",
		"Address : P.O. Box 9013",
		"DAR ES SALAAM",
		"TANZANIA",
		"Tel : 0784 555123",
		"Cust Ref : FOR T 964 DNA",
		"S No Item Code Description Unit Qty Rate Value",
		"1 2132004135 WHEEL RIM 22.5 PCS 4 850,668.00 3,402,672.00",
		"2 3373119002 VALVE EXTENSION PCS 4 1,300.00 5,200.00",
		"3 21004 WHEEL NUT FRONT PCS 4 12,712.00 50,848.00",
		"4 21019 WHEEL NUT REAR PCS 1 25,424.00 25,424.00",
		"Net Value : TSH 3,484,144.00",
		"VAT : TSH 627,145.92",
		"Gross Value : TSH 4,111,289.92",
	}}}
}

var _ = Describe("Parser", func() {
	var parser *Parser

	BeforeEach(func() {
		parser = NewParser(nil)
	})

	When("parsing a complete proforma invoice", func() {
		var result Result

		BeforeEach(func() {
			result = parser.Parse(proformaFixture())
		})

		It("succeeds", func() {
			Expect(result.Success).To(BeTrue())
			Expect(result.Error).To(BeEmpty())
		})

		It("separates seller and customer identities", func() {
			Expect(result.Header.SellerName).To(Equal("SUPERDOLL TRAILER MANUFACTURE CO. LTD"))
			Expect(result.Header.SellerPhone).To(Equal("+255-22-2865432"))
			Expect(result.Header.CustomerName).To(Equal("SERENGETI BREWERIES LIMITED"))
			Expect(result.Header.CustomerAddress).To(Equal("P.O. Box 9013 DAR ES SALAAM TANZANIA"))
			Expect(result.Header.CustomerPhone).To(Equal("0784 555123"))
		})

		It("does not leak the seller's P.O. Box into the customer address", func() {
			Expect(result.Header.CustomerAddress).NotTo(ContainSubstring("16541"))
		})

		It("extracts the labeled header fields", func() {
			Expect(result.Header.InvoiceNumber).To(Equal("PI-1765632"))
			Expect(result.Header.CodeNumber).To(Equal("SBL-044"))
			Expect(result.Header.Date).To(Equal("12/03/2024"))
			Expect(result.Header.Reference).To(Equal("FOR T 964 DNA"))
		})

		It("extracts the printed totals verbatim", func() {
			Expect(result.Totals.Subtotal).To(Equal("3484144.00"))
			Expect(result.Totals.Tax).To(Equal("627145.92"))
			Expect(result.Totals.Total).To(Equal("4111289.92"))
		})

		It("parses every line item with contiguous sequence numbers", func() {
			Expect(result.Items).To(HaveLen(4))
			for i, it := range result.Items {
				Expect(it.SequenceNumber).To(Equal(i + 1))
			}
			Expect(result.Items[3].ItemCode).To(Equal("21019"))
			Expect(result.Items[3].Quantity).To(Equal(1))
			Expect(result.Items[3].Value).To(Equal("25424.00"))
		})

		It("preserves the raw text", func() {
			Expect(result.RawText).To(ContainSubstring("PI No : PI-1765632"))
		})

		It("is deterministic across invocations", func() {
			Expect(parser.Parse(proformaFixture())).To(Equal(result))
		})
	})

	When("the input has no pages", func() {
		It("fails with no_text_extracted", func() {
			result := parser.Parse(nil)
			Expect(result.Success).To(BeFalse())
			Expect(result.Error).To(Equal(ErrNoTextExtracted))
		})
	})

	When("the text yields no structured data", func() {
		It("fails with parsing_failed and keeps the raw text", func() {
			result := parser.Parse([]RawPage{{PageNumber: 1, Lines: []string{
				"lorem ipsum dolor",
				"random narrative text",
			}}})
			Expect(result.Success).To(BeFalse())
			Expect(result.Error).To(Equal(ErrParsingFailed))
			Expect(result.RawText).To(ContainSubstring("lorem ipsum dolor"))
		})
	})

	Describe("ParseText", func() {
		It("treats form feeds as page boundaries", func() {
			page := proformaFixture()[0]
			text := ""
			for _, l := range page.Lines {
				text += l + "\n"
			}
			result := parser.ParseText(text + "\f\n")
			Expect(result.Success).To(BeTrue())
			Expect(result.Items).To(HaveLen(4))
		})

		It("fails on empty text", func() {
			result := parser.ParseText("   \n \f ")
			Expect(result.Success).To(BeFalse())
			Expect(result.Error).To(Equal(ErrNoTextExtracted))
		})
	})
})

var _ = Describe("SplitPages", func() {
	It("splits on form feeds, trims lines and renumbers pages", func() {
		pages := SplitPages("first line \n second line\n\f\fpage two\n\n")
		Expect(pages).To(HaveLen(2))
		Expect(pages[0].PageNumber).To(Equal(1))
		Expect(pages[0].Lines).To(Equal([]string{"first line", "second line"}))
		Expect(pages[1].PageNumber).To(Equal(2))
		Expect(pages[1].Lines).To(Equal([]string{"page two"}))
	})

	It("drops pages with no recoverable text", func() {
		Expect(SplitPages("\f\f\f")).To(BeEmpty())
	})
})
