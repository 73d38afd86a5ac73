package processor

import "context"

// Processor handles one source file end to end: language checks, optional
// MKV track extraction, translation and output writing.
type Processor interface {
	Process(ctx context.Context, path string) error
}
