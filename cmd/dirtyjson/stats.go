package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	dirtyjson "github.com/biggeezerdevelopment/dirtyjson-go"
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/lexer"
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/parser"
	"github.com/biggeezerdevelopment/dirtyjson-go/internal/scanner"
)

// statsCommand prints tokenizer stats for each input.
type statsCommand struct {
	c     *cli
	files []string
}

func addStatsCommand(app *kingpin.Application, c *cli) {
	cmd := &statsCommand{c: c}
	stats := app.Command("stats", "Print structural and token stats and per-path timings.").Action(cmd.run)
	stats.Arg("file", "Files to inspect. None or - reads stdin.").StringsVar(&cmd.files)
}

func (cmd *statsCommand) run(*kingpin.ParseContext) error {
	for _, name := range inputs(cmd.files) {
		if err := cmd.printStats(name); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *statsCommand) printStats(name string) error {
	data, err := cmd.c.read(name)
	if err != nil {
		return err
	}

	start := time.Now()
	idx := scanner.Build(data)
	scanTook := time.Since(start)

	start = time.Now()
	single, err := parser.Tokenize(data)
	singleTook := time.Since(start)
	if err != nil {
		return errors.Wrapf(err, "tokenizing %s", name)
	}

	start = time.Now()
	two, err := parser.Extract(data, idx)
	twoTook := time.Since(start) + scanTook
	if err != nil {
		return errors.Wrapf(err, "tokenizing %s", name)
	}
	if len(single) != len(two) {
		level.Warn(cmd.c.logger).Log("msg", "tokenizers disagree", "input", name, "single_pass", len(single), "two_stage", len(two))
	}
	out := dirtyjson.Reconstruct(two)

	w := cmd.c.stdout
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%s:\n", name)
	fmt.Fprintf(w,
		"\tsize: %v, output size: %v, structural entries: %s, tokens: %s\n",
		humanize.Bytes(uint64(len(data))),
		humanize.Bytes(uint64(len(out))),
		humanize.Comma(int64(idx.Len())),
		humanize.Comma(int64(len(two))),
	)
	fmt.Fprintf(w, "\ttokens by kind: %s\n", kindCounts(two))
	fmt.Fprintf(w, "\tlane-parallel scan: %v\n", scanner.HasSIMD())
	fmt.Fprintf(w,
		"\tsingle-pass: %v (%s), two-stage: %v (%s, scan %v)\n",
		singleTook, rate(len(data), singleTook),
		twoTook, rate(len(data), twoTook), scanTook,
	)
	return nil
}

func kindCounts(tokens []lexer.Token) string {
	var counts [lexer.EOF + 1]int
	for _, tok := range tokens {
		counts[tok.Kind]++
	}

	var parts []string
	for k, n := range counts {
		if n > 0 && lexer.Kind(k) != lexer.EOF {
			parts = append(parts, fmt.Sprintf("%s=%s", lexer.Kind(k), humanize.Comma(int64(n))))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func rate(n int, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	return humanize.Bytes(uint64(float64(n)/d.Seconds())) + "/s"
}
