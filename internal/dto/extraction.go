package dto

// ExtractionMetadata summarizes a successful financial extraction. Method is
// set only when the result came from the best-effort fallback prompt.
type ExtractionMetadata struct {
	Currency       string   `json:"currency"`
	Scale          string   `json:"scale"`
	Periods        []string `json:"periods,omitempty"`
	LineItemsCount int      `json:"line_items_count,omitempty"`
	Method         string   `json:"method,omitempty"`
}

type FinancialExtractionResponse struct {
	Status   string              `json:"status"`
	FilePath string              `json:"file_path,omitempty"`
	Error    string              `json:"error,omitempty"`
	Metadata *ExtractionMetadata `json:"metadata,omitempty"`
}

type EarningsCallSummaryResponse struct {
	Status              string            `json:"status"`
	ManagementTone      string            `json:"management_tone,omitempty"`
	ConfidenceLevel     string            `json:"confidence_level,omitempty"`
	KeyPositives        []string          `json:"key_positives,omitempty"`
	KeyConcerns         []string          `json:"key_concerns,omitempty"`
	ForwardGuidance     map[string]string `json:"forward_guidance,omitempty"`
	CapacityUtilization string            `json:"capacity_utilization,omitempty"`
	GrowthInitiatives   []string          `json:"growth_initiatives,omitempty"`
	Error               string            `json:"error,omitempty"`
}
