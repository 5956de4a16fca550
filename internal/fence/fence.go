// Package fence extracts fenced code blocks of a single language from
// Markdown text. It is a minimal line scanner, not a Markdown parser: only
// the fence delimiters matter.
package fence

import "strings"

// Block is one fenced code block found in a document.
type Block struct {
	// Code is the block's content, lines joined with "\n", fence lines
	// excluded.
	Code string
	// StartLine is the 1-based line number of the first content line.
	StartLine int
}

const marker = "```"

// Extract scans source and returns every fenced code block tagged with lang,
// in document order. The language tag is matched as a prefix of the opening
// fence's info string. Blocks tagged with any other language are skipped
// entirely, and a block still open at end of input is discarded.
func Extract(source []byte, lang string) []Block {
	open := marker + lang

	var (
		blocks  []Block
		current []string
		inBlock bool
	)

	for i, line := range strings.Split(string(source), "\n") {
		stripped := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(stripped, open):
			// An opening fence inside an open block restarts it.
			inBlock = true
			current = nil
		case inBlock && strings.HasPrefix(stripped, marker):
			inBlock = false
			blocks = append(blocks, Block{
				Code:      strings.Join(current, "\n"),
				StartLine: i - len(current) + 1,
			})
		case inBlock:
			current = append(current, line)
		}
	}

	return blocks
}
