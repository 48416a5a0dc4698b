package anim

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// globalDebug enables the checks in this file. Off by default; the checks
// cost a branch per Update and a log call per construction.
var globalDebug bool

// logger receives Runner and Player lifecycle messages and debug warnings.
var logger = zap.NewNop()

// SetDebugMode enables or disables debug checks. In debug mode, updating a
// disposed animation or recomputing a disposed derived value panics instead
// of being ignored, and building a tree deeper than debugMaxTreeDepth logs a
// warning.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// SetLogger sets the logger used by the package. A nil logger silences it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used. Only called in debug mode.
func debugCheckDisposed(n *node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("anim debug: %s on disposed %s node (ID was %d)", op, n.kind, n.id))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold. Update
// recurses once per level.
const debugMaxTreeDepth = 64

func debugCheckTreeDepth(n *node) {
	if n.depth > debugMaxTreeDepth {
		logger.Warn("animation tree depth exceeds threshold",
			zap.Int("depth", n.depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.Stringer("kind", n.kind),
			zap.Uint32("id", n.id),
		)
	}
}

// Dump returns an indented description of the tree rooted at a, one node per
// line with its kind, ID and duration.
func Dump(a Animation) string {
	var sb strings.Builder
	dump(&sb, a, 0)
	return sb.String()
}

func dump(sb *strings.Builder, a Animation, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	if a.IsDisposed() {
		fmt.Fprintf(sb, "%s #%d (disposed)\n", a.Kind(), a.ID())
		return
	}
	fmt.Fprintf(sb, "%s #%d d=%g", a.Kind(), a.ID(), a.Duration())
	switch n := a.(type) {
	case *scaled:
		fmt.Fprintf(sb, " k=%g", n.factor)
	case *transformed:
		if s, ok := n.tt.(fmt.Stringer); ok {
			fmt.Fprintf(sb, " tt=%s", s)
		}
	case *attached:
		fmt.Fprintf(sb, " dv=#%d", n.dv.ID())
	}
	sb.WriteByte('\n')
	for _, c := range a.children() {
		dump(sb, c, indent+1)
	}
}
