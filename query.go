package footprint

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the snapshot rendered in
// the persisted document form, e.g. `$[0].category` or
// `$[?(@.scope=="Scope 1")].emissions_kgCO2e`.
func Query(s Snapshot, expr string) (interface{}, error) {
	data, err := marshalRecords(s)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot rebuild snapshot document: %w", err)
	}
	result, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return result, nil
}
