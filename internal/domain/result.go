package domain

// ResultStatus is the tag of a ComputeResult. A caller must branch on the tag
// before reading Data; only StatusOK and StatusEstimateOnly carry data, and
// estimate-only data is a non-authoritative placeholder.
type ResultStatus string

const (
	StatusOK            ResultStatus = "OK"
	StatusEstimateOnly  ResultStatus = "ESTIMATE_ONLY"
	StatusCannotCompute ResultStatus = "CANNOT_COMPUTE"
	StatusNoData        ResultStatus = "NO_DATA"
)

// Confidence qualifies an OK result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// ComputeResult is the shared result envelope for every calculator that can
// legitimately fail to produce a precise number. Exactly one of the four
// statuses is set; callers receive an explicit outcome rather than a
// fabricated value.
type ComputeResult[T any] struct {
	Status     ResultStatus `json:"status"`
	Data       T            `json:"data,omitempty"`
	Confidence Confidence   `json:"confidence,omitempty"`
	Warnings   []string     `json:"warnings,omitempty"`
	Note       string       `json:"note,omitempty"`    // ESTIMATE_ONLY
	Reason     string       `json:"reason,omitempty"`  // CANNOT_COMPUTE
	Message    string       `json:"message,omitempty"` // NO_DATA
}

// OK wraps data in a successful result.
func OK[T any](data T, confidence Confidence, warnings ...string) ComputeResult[T] {
	return ComputeResult[T]{Status: StatusOK, Data: data, Confidence: confidence, Warnings: warnings}
}

// EstimateOnly wraps a best-effort placeholder that must be rendered as
// non-authoritative together with the note.
func EstimateOnly[T any](data T, note string) ComputeResult[T] {
	return ComputeResult[T]{Status: StatusEstimateOnly, Data: data, Note: note}
}

// CannotCompute reports an input that rules out any computation.
func CannotCompute[T any](reason string) ComputeResult[T] {
	return ComputeResult[T]{Status: StatusCannotCompute, Reason: reason}
}

// NoData reports that required reference data was absent.
func NoData[T any](message string) ComputeResult[T] {
	return ComputeResult[T]{Status: StatusNoData, Message: message}
}

// Value returns the data and whether it is authoritative (StatusOK).
func (r ComputeResult[T]) Value() (T, bool) {
	return r.Data, r.Status == StatusOK
}

// HasData reports whether the result carries data at all, authoritative or not.
func (r ComputeResult[T]) HasData() bool {
	return r.Status == StatusOK || r.Status == StatusEstimateOnly
}
