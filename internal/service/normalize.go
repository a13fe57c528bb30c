package service

import (
	"encoding/json"
	"errors"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// Required top-level keys per extraction task. Anything beyond these is
// accepted as-is; there is no deep validation.
var (
	financialRequiredKeys = []string{"currency", "periods", "line_items"}
	earningsRequiredKeys  = []string{"management_tone", "confidence_level", "key_positives", "key_concerns"}
)

// stripCodeFence removes a wrapping markdown code fence, language-tagged or
// bare, if present. Unfenced input is returned trimmed and otherwise
// unmodified.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	const fence = "```"
	if !strings.HasPrefix(s, fence) {
		return s
	}
	body := strings.TrimPrefix(s, fence)
	body = strings.TrimPrefix(body, "json")
	if end := strings.Index(body, fence); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// normalizeResponse strips an optional code fence from raw model output,
// parses the remainder strictly as JSON, and verifies that every required
// top-level key is present. Parse failures and missing keys come back as
// ParseError and StructureError respectively.
func normalizeResponse(raw string, required []string) (map[string]any, error) {
	text := stripCodeFence(raw)

	var payload map[string]any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, &ParseError{Err: err}
	}

	if missing := missingKeys(payload, required); len(missing) > 0 {
		return nil, &StructureError{Missing: missing}
	}

	return payload, nil
}

// normalizeLenient is the fallback-path variant: on a parse failure it runs
// the output through json-repair once before giving up. Structure failures
// are not repaired.
func normalizeLenient(raw string, required []string) (map[string]any, error) {
	payload, err := normalizeResponse(raw, required)
	if err == nil {
		return payload, nil
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		return nil, err
	}

	repaired, rerr := jsonrepair.RepairJSON(stripCodeFence(raw))
	if rerr != nil {
		return nil, err
	}
	return normalizeResponse(repaired, required)
}

func missingKeys(payload map[string]any, required []string) []string {
	var missing []string
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
