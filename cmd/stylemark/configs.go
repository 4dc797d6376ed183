package main

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/stylemark-format/stylemark"
	"github.com/stylemark-format/stylemark/encode"
	"github.com/stylemark-format/stylemark/parse"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='force color output'"`
	Strict bool   `cli:"name=strict desc='append declarations to an explicit style token instead of replacing it'"`
	Open   string `cli:"name=open desc='annotation open delimiter'"`
	Close  string `cli:"name=close desc='annotation close delimiter'"`
	Match  string `cli:"name=m aliases=match desc='expr filter over parent elements'"`

	ConfigFile string
	Out        string
	CloseOut   func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) configOpt(cc *cli.Context, a string) (any, error) {
	cfg.ConfigFile = a
	if err := cfg.loadFile(a); err != nil {
		return nil, err
	}
	return nil, nil
}

func (cfg *MainConfig) applyOpts() ([]stylemark.Option, error) {
	var res []stylemark.Option
	open, close := parse.DefaultOpen, parse.DefaultClose
	if cfg.Open != "" {
		open, _ = utf8.DecodeRuneInString(cfg.Open)
	}
	if cfg.Close != "" {
		close, _ = utf8.DecodeRuneInString(cfg.Close)
	}
	res = append(res, stylemark.WithDelims(open, close))
	if cfg.Strict {
		res = append(res, stylemark.WithStrictStyle(true))
	}
	if cfg.Match != "" {
		f, err := compileMatch(cfg.Match)
		if err != nil {
			return nil, err
		}
		res = append(res, stylemark.WithMatch(f))
	}
	return res, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ApplyConfig struct {
	*MainConfig

	Apply *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Applied bool `cli:"name=a aliases=applied desc='view the tree after applying annotations'"`
	View    *cli.Command
}

type ParseConfig struct {
	*MainConfig

	Parse *cli.Command
}
