package check

import (
	"bytes"

	"github.com/alecthomas/chroma/v2/quick"
)

// highlight renders Python source with ANSI colors for terminal display.
// On any highlighting error the plain source is returned instead.
func highlight(code string) string {
	var buf bytes.Buffer

	if err := quick.Highlight(&buf, code, "python", "terminal256", "monokai"); err != nil {
		return code
	}

	return buf.String()
}
