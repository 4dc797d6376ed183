package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/stylemark-format/stylemark"
	"github.com/stylemark-format/stylemark/markup"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	opts, err := cfg.applyOpts()
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	differs := false
	for _, file := range args {
		d, err := diffFile(cfg, opts, cc.Out, file)
		if err != nil {
			return err
		}
		differs = differs || d
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffFile(cfg *DiffConfig, opts []stylemark.Option, w io.Writer, file string) (bool, error) {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return false, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	doc, err := markup.Decode(f)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", file, err)
	}
	before := markup.MustString(doc)
	stylemark.Apply(doc, opts...)
	after := markup.MustString(doc)
	if before == after {
		return false, nil
	}

	dmp := diffpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return true, writeDiffs(w, diffs, cfg.useColor(w))
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func writeDiffs(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	for _, d := range diffs {
		var out string
		switch d.Type {
		case diffpatch.DiffInsert:
			if colored {
				out = color.GreenString(d.Text)
			} else {
				out = "{+" + d.Text + "+}"
			}
		case diffpatch.DiffDelete:
			if colored {
				out = color.RedString(d.Text)
			} else {
				out = "[-" + d.Text + "-]"
			}
		case diffpatch.DiffEqual:
			out = d.Text
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
