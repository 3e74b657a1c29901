package debuggers

// Correlation markers. A script prints one of these followed directly by the decimal
// correlation id; the exact text is searched for again in the captured stdout.
const (
	BeginMarker = "__output_with_correlation_id_begin__="
	EndMarker   = "__output_with_correlation_id_end__="
)
