package models

import "testing"

func TestFinancialStatementFromMap(t *testing.T) {
	payload := map[string]any{
		"currency": "INR",
		"scale":    "Crores",
		"periods":  []any{"Q1FY26", "Q2FY26"},
		"line_items": []any{
			map[string]any{"name": "Revenue", "category": "Revenue", "values": []any{float64(500), nil}},
			"not an object",
			map[string]any{"name": "EBITDA"},
		},
	}

	stmt := FinancialStatementFromMap(payload)

	if stmt.Currency != "INR" || stmt.Scale != "Crores" {
		t.Errorf("currency/scale = %q/%q", stmt.Currency, stmt.Scale)
	}
	if len(stmt.Periods) != 2 || stmt.Periods[0] != "Q1FY26" {
		t.Errorf("periods = %v", stmt.Periods)
	}
	if len(stmt.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2 (malformed entry skipped)", len(stmt.LineItems))
	}
	if stmt.LineItems[1].Name != "EBITDA" || stmt.LineItems[1].Values != nil {
		t.Errorf("second item = %+v", stmt.LineItems[1])
	}
}

func TestLineItemValue_AbsentIsNil(t *testing.T) {
	item := LineItem{Name: "Revenue", Values: []any{float64(500), nil}}

	if v := item.Value(0); v != float64(500) {
		t.Errorf("Value(0) = %v", v)
	}
	if v := item.Value(1); v != nil {
		t.Errorf("Value(1) = %v, want nil for explicit null", v)
	}
	if v := item.Value(2); v != nil {
		t.Errorf("Value(2) = %v, want nil past the end", v)
	}
	if v := item.Value(-1); v != nil {
		t.Errorf("Value(-1) = %v, want nil", v)
	}
}
