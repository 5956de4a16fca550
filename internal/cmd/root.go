package cmd

import (
	_ "embed"
	"errors"
	"io"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/mdpyright/mdpyright/internal/check"
)

//go:embed help/root.md
var rootHelp string

var defaultModules = []string{"autogen_agentchat", "autogen_core", "autogen_ext"}

const defaultChecker = "pyright -"

var errEmptyChecker = errors.New("checker command is empty")

// Execute runs the root command with the given arguments and returns the
// process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return 1
	}

	return 0
}

func rootCmd() *cobra.Command {
	var (
		modules []string
		checker string
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "mdpyright [flags] markdown_file...",
		Short: "Type-check Python code blocks in Markdown files",
		Long:  rootHelp,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := shlex.Split(checker)
			if err != nil {
				return err
			}

			if len(command) == 0 {
				return errEmptyChecker
			}

			chk := &check.Checker{
				Command: command,
				Modules: modules,
				Log:     cmd.ErrOrStderr(),
			}

			return chk.Files(args)
		},

		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	cmd.Flags().StringSliceVar(&modules, "module", defaultModules, "only check blocks that mention one of these modules")
	cmd.Flags().StringVar(&checker, "checker", defaultChecker, "checker command; each block's code is fed on its stdin")

	return cmd
}
