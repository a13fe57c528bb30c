package service

import (
	"errors"
	"reflect"
	"testing"
)

const sampleFinancialJSON = `{"currency":"INR","scale":"Crores","periods":["Q1FY26"],"line_items":[{"name":"Revenue","values":[500],"category":"Revenue"}]}`

func TestStripCodeFence_TaggedFence(t *testing.T) {
	wrapped := "```json\n" + sampleFinancialJSON + "\n```"
	if got := stripCodeFence(wrapped); got != sampleFinancialJSON {
		t.Errorf("stripCodeFence() = %q, want %q", got, sampleFinancialJSON)
	}
}

func TestStripCodeFence_BareFence(t *testing.T) {
	wrapped := "```\n" + sampleFinancialJSON + "\n```"
	if got := stripCodeFence(wrapped); got != sampleFinancialJSON {
		t.Errorf("stripCodeFence() = %q, want %q", got, sampleFinancialJSON)
	}
}

func TestStripCodeFence_Unfenced(t *testing.T) {
	if got := stripCodeFence("  " + sampleFinancialJSON + "\n"); got != sampleFinancialJSON {
		t.Errorf("stripCodeFence() = %q, want input unmodified", got)
	}
}

func TestNormalizeResponse_FencedAndUnfencedAgree(t *testing.T) {
	plain, err := normalizeResponse(sampleFinancialJSON, financialRequiredKeys)
	if err != nil {
		t.Fatalf("normalizeResponse(plain) error = %v", err)
	}

	for _, wrapped := range []string{
		"```json\n" + sampleFinancialJSON + "\n```",
		"```\n" + sampleFinancialJSON + "\n```",
	} {
		fenced, err := normalizeResponse(wrapped, financialRequiredKeys)
		if err != nil {
			t.Fatalf("normalizeResponse(fenced) error = %v", err)
		}
		if !reflect.DeepEqual(plain, fenced) {
			t.Errorf("fenced result differs from plain: %v vs %v", fenced, plain)
		}
	}
}

func TestNormalizeResponse_NoFieldLoss(t *testing.T) {
	payload, err := normalizeResponse(sampleFinancialJSON, financialRequiredKeys)
	if err != nil {
		t.Fatalf("normalizeResponse() error = %v", err)
	}

	if payload["currency"] != "INR" || payload["scale"] != "Crores" {
		t.Errorf("unexpected payload: %v", payload)
	}
	items, ok := payload["line_items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 line item, got %v", payload["line_items"])
	}
}

func TestNormalizeResponse_InvalidJSON(t *testing.T) {
	_, err := normalizeResponse("the document contains revenue of 500", financialRequiredKeys)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestNormalizeResponse_MissingRequiredKeys(t *testing.T) {
	_, err := normalizeResponse(`{"currency":"INR"}`, financialRequiredKeys)

	var structErr *StructureError
	if !errors.As(err, &structErr) {
		t.Fatalf("expected StructureError, got %v", err)
	}
	want := []string{"periods", "line_items"}
	if !reflect.DeepEqual(structErr.Missing, want) {
		t.Errorf("Missing = %v, want %v", structErr.Missing, want)
	}
}

func TestNormalizeResponse_EarningsRequiredKeys(t *testing.T) {
	valid := `{"management_tone":"optimistic","confidence_level":"high","key_positives":["a"],"key_concerns":["b"]}`
	if _, err := normalizeResponse(valid, earningsRequiredKeys); err != nil {
		t.Fatalf("normalizeResponse() error = %v", err)
	}

	_, err := normalizeResponse(`{"management_tone":"optimistic"}`, earningsRequiredKeys)
	var structErr *StructureError
	if !errors.As(err, &structErr) {
		t.Fatalf("expected StructureError, got %v", err)
	}
}

func TestNormalizeLenient_RepairsTruncatedJSON(t *testing.T) {
	// Unclosed object, a typical truncated model reply.
	broken := `{"currency":"INR","scale":"Crores","periods":["Q1"],"line_items":[]`

	payload, err := normalizeLenient(broken, financialRequiredKeys)
	if err != nil {
		t.Fatalf("normalizeLenient() error = %v", err)
	}
	if payload["currency"] != "INR" {
		t.Errorf("currency = %v, want INR", payload["currency"])
	}
}

func TestNormalizeLenient_DoesNotRepairStructure(t *testing.T) {
	_, err := normalizeLenient(`{"currency":"INR"}`, financialRequiredKeys)

	var structErr *StructureError
	if !errors.As(err, &structErr) {
		t.Fatalf("expected StructureError, got %v", err)
	}
}
