package tui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/statespace/pkg/domain"
)

// ProgressHooks prints every newly discovered state as "Added: N: description".
func ProgressHooks(w io.Writer) domain.LifecycleHooks {
	var mu sync.Mutex
	return domain.LifecycleHooks{
		OnDiscover: func(_ context.Context, e *domain.DiscoverEvent) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(w, "Added: %d: %s\n", e.Index, e.Description)
		},
	}
}
