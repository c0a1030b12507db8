package calculator

// Telemetry constants for counters
const (
	// telemetryQuoteValidationErrors counts quote requests rejected by input validation
	telemetryQuoteValidationErrors = "quote.validation_errors"

	// telemetryQuoteStoreErrors counts failures while persisting a served calculation
	telemetryQuoteStoreErrors = "quote.store.errors"
)

// Telemetry constants for timings
const (
	// telemetryQuoteComputeDuration measures the time spent in the interest formulas
	telemetryQuoteComputeDuration = "quote.compute.duration"

	// telemetryQuoteStoreDuration measures the time spent persisting a calculation
	telemetryQuoteStoreDuration = "quote.store.duration"
)

// Telemetry constants for gauges
const (
	// telemetryQuoteHistorySize tracks the number of calculations held in memory
	telemetryQuoteHistorySize = "quote.history_size"

	// telemetryQuoteFinalAmount reports the final amount of the last served quote
	telemetryQuoteFinalAmount = "quote.final_amount"
)

// Telemetry constants for spans
const (
	// telemetrySpanHandleQuote represents the overall handling of a single quote
	telemetrySpanHandleQuote = "handleQuote"

	// telemetrySpanComputeQuote covers running the interest formulas and rounding
	telemetrySpanComputeQuote = "computeQuote"
)
