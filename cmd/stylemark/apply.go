package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/stylemark-format/stylemark"
	"github.com/stylemark-format/stylemark/markup"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	opts, err := cfg.applyOpts()
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) == 0 {
		return applyReader(opts, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := applyFile(opts, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func applyFile(opts []stylemark.Option, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := applyReader(opts, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func applyReader(opts []stylemark.Option, w io.Writer, r io.Reader) error {
	doc, err := markup.Decode(r)
	if err != nil {
		return err
	}
	stylemark.Apply(doc, opts...)
	if err := markup.Encode(w, doc); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
