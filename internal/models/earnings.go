package models

import "fmt"

// EarningsSummary is the normalized shape of an earnings-call summary.
// Tone and confidence are required by the normalizer; the remaining fields
// are carried as-is with best-effort coercion.
type EarningsSummary struct {
	ManagementTone      string
	ConfidenceLevel     string
	KeyPositives        []string
	KeyConcerns         []string
	ForwardGuidance     map[string]string
	CapacityUtilization string
	GrowthInitiatives   []string
}

// EarningsSummaryFromMap builds an EarningsSummary from the parsed model
// payload.
func EarningsSummaryFromMap(payload map[string]any) *EarningsSummary {
	return &EarningsSummary{
		ManagementTone:      stringOr(payload["management_tone"], ""),
		ConfidenceLevel:     stringOr(payload["confidence_level"], ""),
		KeyPositives:        toStringSlice(payload["key_positives"]),
		KeyConcerns:         toStringSlice(payload["key_concerns"]),
		ForwardGuidance:     toStringMap(payload["forward_guidance"]),
		CapacityUtilization: stringOr(payload["capacity_utilization"], ""),
		GrowthInitiatives:   toStringSlice(payload["growth_initiatives"]),
	}
}

func stringOr(v any, fallback string) string {
	switch t := v.(type) {
	case nil:
		return fallback
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func toStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, stringOr(item, ""))
	}
	return out
}

func toStringMap(v any) map[string]string {
	entries, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(entries))
	for k, item := range entries {
		out[k] = stringOr(item, "")
	}
	return out
}
