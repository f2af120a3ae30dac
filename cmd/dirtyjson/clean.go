package main

import (
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/tidwall/pretty"

	dirtyjson "github.com/biggeezerdevelopment/dirtyjson-go"
)

// cleanCommand writes the strict JSON form of each input.
type cleanCommand struct {
	c *cli

	files  []string
	output string

	mode     string
	pretty   bool
	validate bool
	indent   string

	modeSet, prettySet, validateSet, indentSet bool

	create func(name string) (io.WriteCloser, error) // os.Create when nil
}

type cleanOptions struct {
	mode     string
	pretty   bool
	validate bool
	indent   string
}

func addCleanCommand(app *kingpin.Application, c *cli) {
	cmd := &cleanCommand{c: c}
	clean := app.Command("clean", "Clean each file, or stdin, into strict JSON.").Default().Action(cmd.run)
	clean.Flag("mode", "Tokenizer to use: accelerated (structural index) or scalar (single pass).").
		Default(modeAccelerated).Envar("DIRTYJSON_MODE").IsSetByUser(&cmd.modeSet).
		EnumVar(&cmd.mode, modeAccelerated, modeScalar)
	clean.Flag("pretty", "Pretty-print the output.").
		Envar("DIRTYJSON_PRETTY").IsSetByUser(&cmd.prettySet).BoolVar(&cmd.pretty)
	clean.Flag("validate", "Fail when the cleaned output is not valid JSON.").
		Envar("DIRTYJSON_VALIDATE").IsSetByUser(&cmd.validateSet).BoolVar(&cmd.validate)
	clean.Flag("indent", "Indentation used by --pretty.").
		Default(defaultIndent).IsSetByUser(&cmd.indentSet).StringVar(&cmd.indent)
	clean.Flag("output", "Write to this file instead of stdout.").Short('o').StringVar(&cmd.output)
	clean.Arg("file", "Files to clean. None or - reads stdin.").StringsVar(&cmd.files)
}

func (cmd *cleanCommand) options() cleanOptions {
	cfg := cmd.c.cfg
	opts := cleanOptions{
		mode:     cfg.Mode,
		pretty:   cfg.Pretty,
		validate: cfg.Validate,
		indent:   cfg.Indent,
	}
	if explicit(cmd.modeSet, "DIRTYJSON_MODE") {
		opts.mode = cmd.mode
	}
	if explicit(cmd.prettySet, "DIRTYJSON_PRETTY") {
		opts.pretty = cmd.pretty
	}
	if explicit(cmd.validateSet, "DIRTYJSON_VALIDATE") {
		opts.validate = cmd.validate
	}
	if cmd.indentSet {
		opts.indent = cmd.indent
	}
	return opts
}

func (cmd *cleanCommand) run(*kingpin.ParseContext) error {
	if cmd.output == "" {
		return cmd.write(cmd.c.stdout)
	}

	create := cmd.create
	if create == nil {
		create = createFile
	}
	f, err := create(cmd.output)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	if err := cmd.write(f); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing output file")
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// write cleans every input into w.
func (cmd *cleanCommand) write(w io.Writer) error {
	opts := cmd.options()
	logger := cmd.c.logger

	clean := cleanFunc(opts.mode)
	for _, name := range inputs(cmd.files) {
		data, err := cmd.c.read(name)
		if err != nil {
			return err
		}

		start := time.Now()
		out, err := clean(data)
		if err != nil {
			return errors.Wrapf(err, "cleaning %s", name)
		}
		took := time.Since(start)

		if opts.validate && !dirtyjson.IsStrictJSON(out) {
			return errors.Errorf("cleaning %s: output is not valid JSON", name)
		}
		if opts.pretty {
			out = pretty.PrettyOptions(out, &pretty.Options{Width: 80, Indent: opts.indent})
		} else {
			out = append(out, '\n')
		}

		if _, err := w.Write(out); err != nil {
			return errors.Wrap(err, "writing output")
		}
		level.Debug(logger).Log("msg", "cleaned input", "input", name, "mode", opts.mode, "in_bytes", len(data), "out_bytes", len(out), "duration", took)
	}
	return nil
}
