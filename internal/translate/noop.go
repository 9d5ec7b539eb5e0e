package translate

import "context"

// Noop returns text unchanged. Used when translation is disabled.
type Noop struct{}

func (Noop) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}
