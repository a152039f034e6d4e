package parse

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AggregateItems", func() {
	When("a later page restarts the table after a totals line", func() {
		var items []LineItem

		BeforeEach(func() {
			items = AggregateItems([]RawPage{
				{PageNumber: 1, Lines: []string{
					tableHeader,
					"1 41003 BRAKE PAD PCS 2 10,000.00 20,000.00",
					"2 41007 OIL SEAL PCS 4 10,000.00 40,000.00",
					"Net Value : TSH 60,000.00",
				}},
				{PageNumber: 2, Lines: []string{
					tableHeader,
					"7 51001 AIR FILTER PCS 2 15,000.00 30,000.00",
					"Gross Value : TSH 90,000.00",
				}},
			})
		})

		It("recovers rows the whole-document pass lost behind the totals stop", func() {
			Expect(items).To(HaveLen(3))
			Expect(items[2].ItemCode).To(Equal("51001"))
			Expect(items[2].Description).To(Equal("AIR FILTER"))
		})

		It("drops structural duplicates found by both passes", func() {
			codes := []string{items[0].ItemCode, items[1].ItemCode, items[2].ItemCode}
			Expect(codes).To(Equal([]string{"41003", "41007", "51001"}))
		})

		It("renumbers survivors contiguously regardless of printed indices", func() {
			Expect(items[0].SequenceNumber).To(Equal(1))
			Expect(items[1].SequenceNumber).To(Equal(2))
			Expect(items[2].SequenceNumber).To(Equal(3))
		})
	})

	When("there are no pages", func() {
		It("returns no items", func() {
			Expect(AggregateItems(nil)).To(BeEmpty())
		})
	})
})
