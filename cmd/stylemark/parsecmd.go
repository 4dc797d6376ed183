package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/stylemark-format/stylemark/parse"
)

func parseCmd(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: parse requires an annotation body argument", cli.ErrUsage)
	}
	var pOpts []parse.ParseOption
	if cfg.Strict {
		pOpts = append(pOpts, parse.StrictStyle(true))
	}
	ann := parse.Parse(strings.Join(args, " "), pOpts...)

	doc := annotationDoc{
		Empty:   ann.Empty,
		Classes: ann.Classes,
		ID:      ann.ID,
	}
	for _, a := range ann.Attrs {
		doc.Attributes = append(doc.Attributes, yaml.MapItem{Key: a.Key, Value: a.Val})
	}
	d, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

type annotationDoc struct {
	Empty      bool          `yaml:"empty,omitempty"`
	Classes    []string      `yaml:"classes,omitempty"`
	ID         string        `yaml:"id,omitempty"`
	Attributes yaml.MapSlice `yaml:"attributes,omitempty"`
}
