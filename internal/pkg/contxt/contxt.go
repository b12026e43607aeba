package contxt

import (
	"context"
	"os"
	"time"
)

// NewContext returns a background-rooted context with the given deadline,
// used to bound each fire-and-forget poll. CONTEXT_TEST disables the
// deadline.
func NewContext(timeout time.Duration) context.Context {
	if os.Getenv("CONTEXT_TEST") != "" {
		return context.Background()
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
