package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/stylemark-format/stylemark"
	"github.com/stylemark-format/stylemark/encode"
	"github.com/stylemark-format/stylemark/markup"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := viewFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
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
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	doc, err := markup.Decode(r)
	if err != nil {
		return err
	}
	if cfg.Applied {
		opts, err := cfg.applyOpts()
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		stylemark.Apply(doc, opts...)
	}
	return encode.Encode(doc, w, cfg.encOpts(w)...)
}
