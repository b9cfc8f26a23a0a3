package provider

import "fmt"

// EmptyResponseError reports that a backend returned but no content could
// be extracted after every extraction strategy, or the extracted text was
// empty or whitespace. The gateway classifies it as retryable.
type EmptyResponseError struct {
	Model string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("model %s returned no extractable content", e.Model)
}
