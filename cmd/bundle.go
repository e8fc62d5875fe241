package cmd

import (
	"fib/pkg/bundle"
	"fib/pkg/config"
	"fib/pkg/logging"
	"fib/pkg/rsp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBundleCmd(root *rootOptions) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "bundle [languages...]",
		Short: "Bundle source files into a single file",
		Long: `Bundle scans the current directory recursively, skipping build and tool
folders such as bin, obj, node_modules and .git, and writes every file of
the chosen languages into one output file.

Use "all" as the language to include every supported language.`,
		Example: `  fib bundle -l python -o out/bundle.txt
  fib bundle -l go java -o bundle.txt --note --sort type
  fib bundle -l all -o bundle.txt -r -a "Jane Doe"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := workingDir()
			if err != nil {
				return err
			}

			loader := config.NewLoader(root.configFile, wd)
			if err := loader.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			if f := loader.ConfigFile(); f != "" {
				logging.Logger.Debug("Using config file", zap.String("path", f))
			}

			req := bundle.Request{
				Languages:        splitLanguages(append(cfg.Languages, args...)),
				Output:           cfg.Output,
				IncludeNote:      cfg.Note,
				Sort:             bundle.ParseSortMode(cfg.Sort),
				RemoveEmptyLines: cfg.RemoveEmptyLines,
				Author:           cfg.Author,
				Directory:        wd,
			}

			var reporter bundle.Reporter = newConsoleReporter(cmd.OutOrStdout())
			if quiet {
				reporter = bundle.NewLogReporter(logging.Logger)
			}

			_, err = bundle.Run(req, reporter, logging.Logger)
			return err
		},
	}

	f := cmd.Flags()
	f.StringSliceP(config.KeyLanguage, "l", nil, `Languages to include, or "all"`)
	f.StringP(config.KeyOutput, "o", "", "Output file path")
	f.BoolP(config.KeyNote, "n", false, "Write a source comment before each file")
	f.StringP(config.KeySort, "s", "name", `Sort order: "name" or "type"`)
	f.BoolP(config.KeyRemoveEmptyLines, "r", false, "Remove empty lines from the bundled code")
	f.StringP(config.KeyAuthor, "a", "", "Author name written to the bundle header")
	f.BoolVarP(&quiet, "quiet", "q", false, "Report progress through the logger instead of the console")

	return cmd
}

// splitLanguages accepts languages given as separate values or as one
// value separated by commas, spaces or semicolons.
func splitLanguages(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, rsp.SplitLanguages(v)...)
	}
	return out
}
