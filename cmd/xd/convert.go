package main

import (
	"fmt"
	"io"
	"os"

	"github.com/domfmt/go-xmldoc/dom"
	"github.com/domfmt/go-xmldoc/encode"
	"github.com/domfmt/go-xmldoc/parse"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := convertArg(cfg.MainConfig, cc.Out, arg, cfg.encOpts(cc.Out)); err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
	}
	return nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	encOpts := append(cfg.encOpts(cc.Out), encode.Pretty(true))
	for _, arg := range args {
		if err := convertArg(cfg.MainConfig, cc.Out, arg, encOpts); err != nil {
			return fmt.Errorf("error viewing %s: %w", arg, err)
		}
	}
	return nil
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", arg, err)
		}
		s, err := encode.JSONString(doc, encode.Pretty(true))
		if err != nil {
			return fmt.Errorf("error dumping %s: %w", arg, err)
		}
		if _, err := io.WriteString(cc.Out, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func convertArg(cfg *MainConfig, w io.Writer, arg string, encOpts []encode.Option) error {
	doc, err := readDoc(cfg, arg)
	if err != nil {
		return err
	}
	res, err := encode.Serialize(doc, encOpts...)
	if err != nil {
		return err
	}
	switch t := res.(type) {
	case string:
		_, err = io.WriteString(w, t+"\n")
		return err
	default:
		_, err = fmt.Fprintf(w, "%v\n", t)
		return err
	}
}

func readDoc(cfg *MainConfig, arg string) (*dom.Node, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rd = f
	}
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	if len(d) == 0 {
		theLog.Warn("empty input", "file", arg)
	}
	v, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, err
	}
	return dom.FromValue(v)
}
