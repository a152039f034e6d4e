package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SplitSellerBlock", func() {
	var (
		lines []string
		sb    SellerBlock
	)

	JustBeforeEach(func() {
		sb = SplitSellerBlock(lines)
	})

	When("the masthead ends at a document-type marker", func() {
		BeforeEach(func() {
			lines = []string{
				"SUPERDOLL TRAILER MANUFACTURE CO. LTD",
				"P.O. Box 16541, Dar es Salaam",
				"Tel: +255-22-2865432 Fax: +255-22-2865433",
				"Proforma Invoice",
				"Customer Name : SERENGETI BREWERIES LIMITED",
			}
		})

		It("classifies everything before the marker as seller text", func() {
			Expect(sb.Boundary).To(Equal(3))
		})

		It("takes the first line as the seller name", func() {
			Expect(sb.Name).To(Equal("SUPERDOLL TRAILER MANUFACTURE CO. LTD"))
		})

		It("joins the remaining masthead lines into the address", func() {
			Expect(sb.Address).To(ContainSubstring("P.O. Box 16541"))
		})

		It("extracts the seller phone from the Tel label", func() {
			Expect(sb.Phone).To(Equal("+255-22-2865432"))
		})

		It("recognizes later lines carrying seller tokens", func() {
			Expect(sb.IsSellerContext("SUPERDOLL spares division")).To(BeTrue())
			Expect(sb.IsSellerContext("branch office P.O. Box 16541")).To(BeTrue())
		})

		It("does not flag customer lines as seller context", func() {
			Expect(sb.IsSellerContext("P.O. Box 9013 DAR ES SALAAM")).To(BeFalse())
		})
	})

	When("no marker appears in the window", func() {
		BeforeEach(func() {
			lines = []string{
				"KAMAL STEEL WORKS LTD",
				"P.O. Box 1234, Arusha",
				"Plot 77 Industrial Area",
				"random narrative line",
			}
		})

		It("defaults the seller block to the first two lines", func() {
			Expect(sb.Boundary).To(Equal(2))
			Expect(sb.Name).To(Equal("KAMAL STEEL WORKS LTD"))
			Expect(sb.Address).To(Equal("P.O. Box 1234, Arusha"))
		})
	})

	When("the document starts directly with a marker line", func() {
		BeforeEach(func() {
			lines = []string{"Proforma Invoice", "PI No : PI-1"}
		})

		It("yields an empty seller block", func() {
			Expect(sb.Boundary).To(BeZero())
			Expect(sb.Name).To(BeEmpty())
		})
	})
})

var _ = Describe("customer field extraction", func() {
	var sb SellerBlock

	BeforeEach(func() {
		sb = SplitSellerBlock([]string{
			"SUPERDOLL TRAILER MANUFACTURE CO. LTD",
			"P.O. Box 16541, Dar es Salaam",
			"Tel: +255-22-2865432 Fax: +255-22-2865433",
			"Proforma Invoice",
		})
	})

	Describe("ExtractCustomerName", func() {
		It("captures the labeled name", func() {
			name := ExtractCustomerName([]string{"Customer Name : SERENGETI BREWERIES LIMITED"})
			Expect(name).To(Equal("SERENGETI BREWERIES LIMITED"))
		})

		It("strips an echoed label from the value", func() {
			name := ExtractCustomerName([]string{"Customer Name : ACME DISTRIBUTORS Customer Name"})
			Expect(name).To(Equal("ACME DISTRIBUTORS"))
		})

		It("returns empty when the label is absent", func() {
			Expect(ExtractCustomerName([]string{"no such label"})).To(BeEmpty())
		})
	})

	Describe("ExtractCustomerAddress", func() {
		It("follows an Address label across continuation lines", func() {
			addr := ExtractCustomerAddress([]string{
				"Address : P.O. Box 9013",
				"DAR ES SALAAM",
				"TANZANIA",
				"Tel : 0784 555123",
			}, sb)
			Expect(addr).To(Equal("P.O. Box 9013 DAR ES SALAAM TANZANIA"))
		})

		It("falls back to a P.O. Box that is not the seller's", func() {
			addr := ExtractCustomerAddress([]string{
				"Customer Name : SERENGETI BREWERIES LIMITED",
				"P.O. Box 9013",
				"DAR ES SALAAM TANZANIA",
			}, sb)
			Expect(addr).To(Equal("P.O. Box 9013 DAR ES SALAAM TANZANIA"))
		})

		It("never returns the seller's own P.O. Box", func() {
			addr := ExtractCustomerAddress([]string{
				"P.O. Box 16541, Dar es Salaam",
			}, sb)
			Expect(addr).To(BeEmpty())
		})
	})

	Describe("ExtractCustomerPhone", func() {
		It("captures a labeled phone with enough digits", func() {
			phone := ExtractCustomerPhone([]string{"Tel : 0784 555123"}, sb)
			Expect(phone).To(Equal("0784 555123"))
		})

		It("ignores phone labels on seller-context lines", func() {
			phone := ExtractCustomerPhone([]string{"SUPERDOLL Tel : 0784 555123"}, sb)
			Expect(phone).To(BeEmpty())
		})

		It("rejects candidates with too few digits", func() {
			phone := ExtractCustomerPhone([]string{"Tel : 123 456"}, sb)
			Expect(phone).To(BeEmpty())
		})
	})

	Describe("ExtractCustomerEmail", func() {
		It("returns the first email token on a non-seller line", func() {
			email := ExtractCustomerEmail([]string{"Email: orders@serengeti.co.tz"}, sb)
			Expect(email).To(Equal("orders@serengeti.co.tz"))
		})

		It("skips the seller's own email", func() {
			sbMail := SplitSellerBlock([]string{
				"SUPERDOLL TRAILER MANUFACTURE CO. LTD",
				"Email: sales@superdoll.co.tz",
				"Proforma Invoice",
			})
			email := ExtractCustomerEmail([]string{"sales@superdoll.co.tz"}, sbMail)
			Expect(email).To(BeEmpty())
		})
	})
})
