package contract

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amani-mollel/invoice-tracker/internal/parse"
)

var _ = Describe("ValidateResultJSON", func() {
	It("accepts a serialized successful parse result", func() {
		result := parse.Result{
			Success: true,
			Header: parse.Header{
				InvoiceNumber: "PI-1765632",
				CustomerName:  "SERENGETI BREWERIES LIMITED",
			},
			Totals: parse.Totals{Subtotal: "3484144.00", Tax: "627145.92", Total: "4111289.92"},
			Items: []parse.LineItem{{
				SequenceNumber: 1,
				ItemCode:       "2132004135",
				Description:    "WHEEL RIM 22.5",
				Unit:           "PCS",
				Quantity:       4,
				Rate:           "850668.00",
				Value:          "3402672.00",
			}},
			RawText: "Proforma Invoice",
		}
		raw, err := json.Marshal(result)
		Expect(err).NotTo(HaveOccurred())
		Expect(ValidateResultJSON(raw)).To(Succeed())
	})

	It("accepts a failed result whose item list is null", func() {
		result := parse.Result{
			Success: false,
			Error:   parse.ErrParsingFailed,
			Message: "could not extract structured data from document",
			RawText: "garbled",
		}
		raw, err := json.Marshal(result)
		Expect(err).NotTo(HaveOccurred())
		Expect(ValidateResultJSON(raw)).To(Succeed())
	})

	It("rejects a document missing the required fields", func() {
		Expect(ValidateResultJSON([]byte(`{"success": true}`))).NotTo(Succeed())
	})

	It("rejects totals that keep grouping separators", func() {
		Expect(ValidateResultJSON([]byte(
			`{"success": true, "header": {}, "totals": {"total": "3,484,144.00"}}`,
		))).NotTo(Succeed())
	})

	It("rejects an unknown error kind", func() {
		Expect(ValidateResultJSON([]byte(
			`{"success": false, "header": {}, "totals": {}, "error": "llm_failure"}`,
		))).NotTo(Succeed())
	})

	It("rejects items without a description", func() {
		Expect(ValidateResultJSON([]byte(
			`{"success": true, "header": {}, "totals": {},
			  "items": [{"sequence_number": 1, "unit": "PCS", "quantity": 1}]}`,
		))).NotTo(Succeed())
	})

	It("rejects malformed JSON", func() {
		Expect(ValidateResultJSON([]byte(`{"success":`))).NotTo(Succeed())
	})
})
