package tweetsecret

// Result is the outcome for one message word or one received text. A batch
// of Results is positionally aligned with its inputs; failed items carry
// their error instead of aborting the batch.
type Result struct {
	// Input is the original word (encode) or received text (decode).
	Input string
	// Value is the encoded tweet (encode) or the recovered word (decode).
	// Empty when Err is set.
	Value string
	Err   error
}

// Ok reports whether the item was processed successfully.
func (r Result) Ok() bool { return r.Err == nil }
