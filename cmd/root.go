package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fib/pkg/bundle"
	"fib/pkg/language"
	"fib/pkg/logging"
	"fib/pkg/version"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	debug      bool
	configFile string
}

// NewRootCmd builds the fib command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "fib",
		Short: "fib bundles source files into a single text file",
		Long: `fib scans the current directory for source files of the chosen languages
and concatenates them into one file, optionally with a source note before
each file, an author header and without empty lines.

Arguments can be read from a response file: fib @commands.rsp`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(opts.debug, version.AppName, version.Get().Version); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default is ./.fib.yaml)")

	root.AddCommand(
		newBundleCmd(opts),
		newCreateRspCmd(),
		newVersionCmd(),
	)

	return root
}

// Execute expands response files in args, runs the command tree and
// prints any error to stderr.
func Execute(args []string) error {
	return execute(NewRootCmd(), args)
}

func execute(root *cobra.Command, args []string) error {
	expanded, err := ExpandResponseFiles(args)
	if err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	root.SetArgs(expanded)

	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	s := newStyles(w)
	fmt.Fprintln(w, s.err.Render("❌ Error: "+err.Error()))
	if errors.Is(err, bundle.ErrNoValidExtensions) {
		fmt.Fprintln(w, s.muted.Render("💡 Supported languages: "+strings.Join(language.Names(), ", ")))
	}
}

// workingDir is the directory the CLI scans and writes relative paths to.
func workingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return wd, nil
}
