package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "c",
			Aliases:     []string{"config"},
			Description: "YAML config file",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "stylemark").
		WithSynopsis("stylemark [opts] command [opts] [files]").
		WithDescription("stylemark applies inline style annotations to HTML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return smMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			DiffCommand(cfg),
			ViewCommand(cfg),
			ParseCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [files]").
		WithDescription("apply annotations and print the resulting HTML").
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [files]").
		WithDescription("show what apply would change, as a character diff").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-a] [files]").
		WithDescription("view the document tree as a colored outline").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p", "pa").
		WithSynopsis("parse <annotation body>").
		WithDescription("parse one annotation body and print the result as YAML").
		WithRun(func(cc *cli.Context, args []string) error {
			return parseCmd(cfg, cc, args)
		})
}
