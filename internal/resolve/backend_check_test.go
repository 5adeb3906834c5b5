package resolve_test

import (
	"github.com/heartmarshall/lexikon/internal/adapter/translate/gcloud"
	"github.com/heartmarshall/lexikon/internal/adapter/translate/gtx"
	"github.com/heartmarshall/lexikon/internal/resolve"
)

// Compile-time checks: the translation clients must satisfy the backend ports.
var (
	_ resolve.WordBackend  = (*gtx.Client)(nil)
	_ resolve.BatchBackend = (*gcloud.Client)(nil)
)
