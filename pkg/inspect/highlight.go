package inspect

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// highlightJS renders a JavaScript snippet with ANSI colors for terminal
// display. On any highlighting failure the plain source is returned;
// display must never fail because a lexer did.
func highlightJS(src string) string {
	if src == "" {
		return ""
	}

	var buf strings.Builder
	if err := quick.Highlight(&buf, src, "javascript", "terminal256", "monokai"); err != nil {
		return src
	}
	return buf.String()
}
