// Package contract pins the serialized shape of a parse result. The schema is
// validated before a result crosses a process boundary (persisted as job
// output, returned over gRPC) so downstream consumers can rely on it.
package contract

// BuildResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing a serialized parse result.
func BuildResultJSONSchema() map[string]any {
	header := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"invoice_number":   map[string]any{"type": "string"},
			"code_number":      map[string]any{"type": "string"},
			"date":             map[string]any{"type": "string"},
			"reference":        map[string]any{"type": "string"},
			"customer_name":    map[string]any{"type": "string"},
			"customer_address": map[string]any{"type": "string"},
			"customer_phone":   map[string]any{"type": "string"},
			"customer_email":   map[string]any{"type": "string"},
			"seller_name":      map[string]any{"type": "string"},
			"seller_address":   map[string]any{"type": "string"},
			"seller_phone":     map[string]any{"type": "string"},
			"seller_email":     map[string]any{"type": "string"},
			"seller_tax_id":    map[string]any{"type": "string"},
			"seller_vat_reg":   map[string]any{"type": "string"},
		},
	}

	totals := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"subtotal": decimalProp(),
			"tax":      decimalProp(),
			"total":    decimalProp(),
		},
	}

	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"sequence_number": map[string]any{"type": "integer", "minimum": 1},
			"item_code":       map[string]any{"type": "string"},
			"description":     map[string]any{"type": "string", "minLength": 1, "maxLength": 255},
			"unit":            map[string]any{"type": "string", "minLength": 1},
			"quantity":        map[string]any{"type": "integer", "minimum": 1},
			"rate":            decimalProp(),
			"value":           decimalProp(),
		},
		"required": []string{"sequence_number", "description", "unit", "quantity"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"success": map[string]any{"type": "boolean"},
			"header":  header,
			"totals":  totals,
			"items": map[string]any{
				"type":  []string{"array", "null"},
				"items": item,
			},
			"raw_text": map[string]any{"type": "string"},
			"error": map[string]any{
				"type": "string",
				"enum": []string{"empty_input", "unsupported_format", "no_text_extracted", "parsing_failed"},
			},
			"message": map[string]any{"type": "string"},
		},
		"required": []string{"success", "header", "totals"},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d+(\.\d{1,2})?$`,
	}
}
