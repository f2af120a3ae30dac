package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// tokensCommand prints the token stream of each input, one token per line.
type tokensCommand struct {
	c *cli

	files   []string
	mode    string
	modeSet bool
}

func addTokensCommand(app *kingpin.Application, c *cli) {
	cmd := &tokensCommand{c: c}
	tokens := app.Command("tokens", "Print the tokens of each file, or stdin.").Action(cmd.run)
	tokens.Flag("mode", "Tokenizer to use: accelerated (structural index) or scalar (single pass).").
		Default(modeAccelerated).Envar("DIRTYJSON_MODE").IsSetByUser(&cmd.modeSet).
		EnumVar(&cmd.mode, modeAccelerated, modeScalar)
	tokens.Arg("file", "Files to tokenize. None or - reads stdin.").StringsVar(&cmd.files)
}

func (cmd *tokensCommand) run(*kingpin.ParseContext) error {
	mode := cmd.c.cfg.Mode
	if explicit(cmd.modeSet, "DIRTYJSON_MODE") {
		mode = cmd.mode
	}
	tokenize := tokenizeFunc(mode)

	w := cmd.c.stdout
	names := inputs(cmd.files)
	bold := color.New(color.Bold)
	for _, name := range names {
		data, err := cmd.c.read(name)
		if err != nil {
			return err
		}
		tokens, err := tokenize(data)
		if err != nil {
			return errors.Wrapf(err, "tokenizing %s", name)
		}

		if len(names) > 1 {
			bold.Fprintf(w, "%s:\n", name)
		}
		for _, tok := range tokens {
			fmt.Fprintf(w, "%d-%d\t%s\t%q\n", tok.Start, tok.End, tok.Kind, tok.Text)
		}
	}
	return nil
}
