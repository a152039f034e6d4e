package contract

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// resultSchema is compiled once at init; the schema document is static.
var resultSchema = compileResultSchema()

func compileResultSchema() *jsonschema.Schema {
	raw, err := json.Marshal(BuildResultJSONSchema())
	if err != nil {
		panic(fmt.Sprintf("contract: marshal result schema: %v", err))
	}
	return jsonschema.MustCompileString("invoice_result.json", string(raw))
}

// ValidateResultJSON checks a serialized extraction result against the
// canonical result contract before it is persisted or returned.
func ValidateResultJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	if err := resultSchema.Validate(doc); err != nil {
		return fmt.Errorf("result does not match contract: %w", err)
	}
	return nil
}
