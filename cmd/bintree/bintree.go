package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gabesullice/go-bintree/pkg/report"
	"github.com/spf13/cobra"
)

const (
	ErrDefault = 1 + iota
	ErrUsage
	ErrFileOpen
	ErrStdErr
)

type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &codedError{code: code, err: err}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "bintree [file]",
		Short: "Report structural properties of binary trees",
		Long: `bintree reads binary trees, one per line in level order, from a file or
stdin and reports size, height, balance factor, perfectness and max-heap
validity for each. Absent children are written as "-".`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return withCode(ErrUsage, fmt.Errorf("expected at most one file argument, got %d", len(args)))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return withCode(ErrUsage, err)
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.level}))

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return withCode(ErrFileOpen, err)
				}
				defer f.Close()
				in = f
				logger.Debug("reading trees", slog.String("file", args[0]))
			}
			return report.Generate(cmd.Context(), cmd.OutOrStdout(), in, report.Options{
				Concurrency: cfg.Concurrency,
				Format:      report.Format(cfg.Format),
				Logger:      logger,
			})
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./bintree.yaml if present)")
	cmd.Flags().StringP("format", "f", "", "output format (text|table)")
	cmd.Flags().IntP("concurrency", "c", 0, "trees analyzed at once (default: number of CPUs)")
	cmd.Flags().String("log-level", "", "log level (debug|info|warn|error)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(report.FormatText), string(report.FormatTable)}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	code := ErrDefault
	var coded *codedError
	if errors.As(err, &coded) {
		code = coded.code
	}
	exitOnErr(err, code)
}

func exitOnErr(err error, code int) {
	if err != nil {
		if _, printErr := fmt.Fprintln(os.Stderr, err); printErr != nil {
			os.Exit(ErrStdErr)
		}
		os.Exit(code)
	}
}
