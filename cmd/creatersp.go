package cmd

import (
	"fmt"
	"path/filepath"

	"fib/pkg/logging"
	"fib/pkg/rsp"

	"github.com/spf13/cobra"
)

func newCreateRspCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-rsp",
		Short: "Create a response file for the bundle command interactively",
		Long: `create-rsp asks for each bundle option and saves the answers as a
response file in the current directory. Run it later with fib @<file>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := newStyles(out)

			fmt.Fprintln(out, s.title.Render("Response file wizard"))
			fmt.Fprintln(out, s.muted.Render("Press Enter to accept the default shown in brackets."))
			fmt.Fprintln(out)

			opts, err := rsp.NewWizard(cmd.InOrStdin(), out, logging.Logger).Run()
			if err != nil {
				return fmt.Errorf("failed to read answers: %w", err)
			}

			wd, err := workingDir()
			if err != nil {
				return err
			}
			path, err := rsp.Write(wd, opts, logging.Logger)
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, s.success.Render("✅ Response file created: "+path))
			fmt.Fprintln(out, s.muted.Render("Content:"))
			fmt.Fprint(out, rsp.Build(opts))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Run it with: "+s.command.Render("fib @"+filepath.Base(path)))
			return nil
		},
	}
}
