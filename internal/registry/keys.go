package registry

import (
	"github.com/nfrund/vep/internal/content"
)

// Service keys shared between modules and the server. Using typed constants
// prevents typos and mismatched types at the call site.
const (
	// ContentStoreKey is the store whose file the server watches for changes.
	ContentStoreKey Key[*content.Store] = "about.content"
)
