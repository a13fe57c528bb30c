package models

// FinancialStatement is the normalized shape of a financial extraction
// result. Periods and line-item values are aligned positionally; a line item
// may carry fewer values than there are periods, in which case the trailing
// values are absent (not zero).
type FinancialStatement struct {
	Currency  string
	Scale     string
	Periods   []string
	LineItems []LineItem
}

// LineItem is one row of the income statement. Values are kept untyped:
// everything beyond the required top-level keys is accepted as the model
// returned it, and a nil entry marks an absent value.
type LineItem struct {
	Name     string
	Category string
	Values   []any
}

// FinancialStatementFromMap builds a FinancialStatement from the parsed model
// payload. Coercion is tolerant: fields of unexpected types are taken
// best-effort rather than rejected.
func FinancialStatementFromMap(payload map[string]any) *FinancialStatement {
	stmt := &FinancialStatement{
		Currency: stringOr(payload["currency"], ""),
		Scale:    stringOr(payload["scale"], ""),
		Periods:  toStringSlice(payload["periods"]),
	}

	items, _ := payload["line_items"].([]any)
	stmt.LineItems = make([]LineItem, 0, len(items))
	for _, raw := range items {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		values, _ := entry["values"].([]any)
		stmt.LineItems = append(stmt.LineItems, LineItem{
			Name:     stringOr(entry["name"], ""),
			Category: stringOr(entry["category"], ""),
			Values:   values,
		})
	}

	return stmt
}

// Value returns the line item's value for the period at index i, or nil if
// the value is absent.
func (li LineItem) Value(i int) any {
	if i < 0 || i >= len(li.Values) {
		return nil
	}
	return li.Values[i]
}
