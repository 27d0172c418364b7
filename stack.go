package pathkit

import (
	"fmt"
	"runtime"
	"strings"
)

const maxStackDepth = 64

// captureStack formats the calling goroutine's stack, starting skip frames
// above the caller of captureStack.
func captureStack(skip int) string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
