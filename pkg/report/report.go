package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/sync/errgroup"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
)

const maxLineBytes = 64 << 20

type Options struct {
	// Concurrency bounds the number of trees analyzed at once. Zero means
	// runtime.NumCPU().
	Concurrency int
	Format      Format
	Logger      *slog.Logger
}

type line struct {
	number int
	text   string
}

func readLines(in io.Reader) ([]line, error) {
	var lines []line
	s := bufio.NewScanner(in)
	s.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for n := 1; s.Scan(); n++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, line{number: n, text: text})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading trees: %w", err)
	}
	return lines, nil
}

// Generate analyzes every tree in the input, one per line, and writes one
// record per tree to out in input order. Records are named after their
// line number.
func Generate(ctx context.Context, out io.Writer, in io.Reader, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	lines, err := readLines(in)
	if err != nil {
		return err
	}
	records := make([]Record, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, l := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			root, err := Parse(l.text)
			if err != nil {
				return fmt.Errorf("line %d: %w", l.number, err)
			}
			records[i] = Analyze(strconv.Itoa(l.number), root)
			logger.Debug("analyzed tree", slog.Int("line", l.number), slog.Int("size", records[i].Size))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("report generated", slog.Int("trees", len(records)), slog.Int("concurrency", concurrency))

	switch opts.Format {
	case FormatTable:
		return writeTable(out, records)
	case FormatText, "":
		return writeText(out, records)
	}
	return fmt.Errorf("unknown format %q", opts.Format)
}

func writeText(out io.Writer, records []Record) error {
	if _, err := out.Write([]byte("{")); err != nil {
		return err
	}
	count := len(records)
	if count >= 1 {
		for i := range count - 1 {
			rec := records[i].String() + ", "
			if _, err := out.Write([]byte(rec)); err != nil {
				return err
			}
		}
		rec := records[count-1].String()
		if _, err := out.Write([]byte(rec)); err != nil {
			return err
		}
	}
	if _, err := out.Write([]byte("}\n")); err != nil {
		return err
	}
	return nil
}

func writeTable(out io.Writer, records []Record) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Line", "Size", "Height", "Balance", "Perfect", "Max-heap"})
	for _, r := range records {
		t.AppendRow(table.Row{r.Name, r.Size, r.Height, r.Balance, r.Perfect, r.MaxHeap})
	}
	_, err := io.WriteString(out, t.Render()+"\n")
	return err
}
