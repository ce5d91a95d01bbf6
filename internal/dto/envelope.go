package dto

// Envelope is the response wrapper every JSON endpoint returns. Read
// endpoints keep HTTP 200 even on data-access failure and flag it here, with
// demo data substituted into Data; write endpoints flag failure without
// fabricating a written record.
type Envelope[T any] struct {
	Success      bool   `json:"success"`
	Data         T      `json:"data"`
	Error        string `json:"error,omitempty"`
	ErrorDetails string `json:"errorDetails,omitempty"`
}

// OK wraps data in a successful envelope.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// Failed wraps fallback data (or a zero value) in a failed envelope.
func Failed[T any](data T, errMsg, details string) Envelope[T] {
	return Envelope[T]{Success: false, Data: data, Error: errMsg, ErrorDetails: details}
}
