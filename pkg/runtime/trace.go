package runtime

import (
	"fmt"
	"os"
	"sync/atomic"
)

// traceEnabled gates the ++-prefixed allocation trace on standard error.
// Enter reads it from FALCONRT_TRACE.
var traceEnabled atomic.Bool

func tracef(format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
