// Package check runs an external static type-checker over the Python fenced
// code blocks of Markdown files.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/mdpyright/mdpyright/internal/fence"
)

// ErrCheckerNotFound reports that the external checker executable is not
// installed or not in PATH. It aborts the whole run, unlike a failing check.
var ErrCheckerNotFound = errors.New("checker executable not found")

// FileErrors is the aggregate failure of a run: every file that had at least
// one failing code block, in the order the files were checked.
type FileErrors struct {
	Paths []string
}

func (e *FileErrors) Error() string {
	return "syntax errors found in the following files:\n" + strings.Join(e.Paths, "\n")
}

// Checker pipes Python code blocks to an external tool and records failures.
type Checker struct {
	// Command is the checker invocation; each block's code is fed on its
	// stdin and exit status 0 means the block passed.
	Command []string
	// Modules is the relevance filter: a block mentioning none of these
	// names as a substring is not checked at all.
	Modules []string
	// Log receives per-block progress lines and failure diagnostics.
	Log io.Writer
}

var (
	okText   = color.New(color.FgGreen)
	failText = color.New(color.FgRed, color.Bold)
)

// Files checks every file in paths, in order. It returns a *FileErrors when
// one or more files had failing blocks, an error wrapping ErrCheckerNotFound
// when the external tool is missing, and nil when everything passed.
func (c *Checker) Files(paths []string) error {
	var failed []string

	summary := table.New("File", "Blocks", "Checked", "Failed").WithWriter(c.Log)

	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		blocks := fence.Extract(source, "python")

		var checked, failures int

		for _, block := range blocks {
			label := fmt.Sprintf("%s:%d", path, block.StartLine)
			fmt.Fprintf(c.Log, "Checking a code block in %s...\n", label)

			if !c.relevant(block.Code) {
				okText.Fprintln(c.Log, " OK[ignored]")
				continue
			}

			checked++

			output, exitCode, err := c.run(block.Code)
			if err != nil {
				return err
			}

			if exitCode == 0 {
				okText.Fprintln(c.Log, " OK")
				continue
			}

			failures++
			failText.Fprintln(c.Log, " FAIL")
			fmt.Fprintf(c.Log, "Error in %s:\nCode:\n%s\nChecker output:\n%s\n",
				label, highlight(block.Code), strings.TrimSpace(output))
		}

		if failures > 0 {
			failed = append(failed, path)
		}

		summary.AddRow(path, len(blocks), checked, failures)
	}

	summary.Print()

	if len(failed) > 0 {
		return &FileErrors{Paths: failed}
	}

	return nil
}

func (c *Checker) relevant(code string) bool {
	for _, module := range c.Modules {
		if strings.Contains(code, module) {
			return true
		}
	}

	return false
}

// run executes the checker once, feeding code on stdin. A non-zero exit from
// the tool is a result, not an error; only spawn problems are errors.
func (c *Checker) run(code string) (string, int, error) {
	cmd := exec.Command(c.Command[0], c.Command[1:]...)
	cmd.Stdin = strings.NewReader(code)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()

	var exitErr *exec.ExitError

	switch {
	case err == nil:
		return stdout.String(), 0, nil
	case errors.As(err, &exitErr):
		return stdout.String(), exitErr.ExitCode(), nil
	case errors.Is(err, exec.ErrNotFound):
		return "", 0, fmt.Errorf("%w: %s is not installed or not in PATH", ErrCheckerNotFound, c.Command[0])
	default:
		return "", 0, err
	}
}
