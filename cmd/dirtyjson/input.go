package main

import (
	"io"
	"os"

	"github.com/pkg/errors"

	dirtyjson "github.com/biggeezerdevelopment/dirtyjson-go"
)

const stdinName = "-"

// inputs returns the files to process; no files means stdin.
func inputs(files []string) []string {
	if len(files) == 0 {
		return []string{stdinName}
	}
	return files
}

func (c *cli) read(name string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if name == stdinName {
		data, err = io.ReadAll(c.stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	return data, errors.Wrapf(err, "reading %s", name)
}

func cleanFunc(mode string) func([]byte) ([]byte, error) {
	if mode == modeScalar {
		return dirtyjson.Clean
	}
	return dirtyjson.CleanAccelerated
}

func tokenizeFunc(mode string) func([]byte) ([]dirtyjson.Token, error) {
	if mode == modeScalar {
		return dirtyjson.Tokenize
	}
	return dirtyjson.TokenizeAccelerated
}
