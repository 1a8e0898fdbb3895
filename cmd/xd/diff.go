package main

import (
	"fmt"
	"io"

	"github.com/domfmt/go-xmldoc/encode"
	"github.com/domfmt/go-xmldoc/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, to := args[0], args[1]
	if cfg.Reverse {
		from, to = to, from
	}
	fromDoc, err := readDoc(cfg.MainConfig, from)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", from, err)
	}
	toDoc, err := readDoc(cfg.MainConfig, to)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", to, err)
	}
	fromVal, err := encode.Value(fromDoc)
	if err != nil {
		return err
	}
	toVal, err := encode.Value(toDoc)
	if err != nil {
		return err
	}
	d := libdiff.Diff(fromVal, toVal)
	if d == nil {
		return nil
	}
	if err := encode.EncodeValue(d, cc.Out, encode.Pretty(cfg.Pretty)); err != nil {
		return fmt.Errorf("error encoding diff: %w", err)
	}
	_, err = io.WriteString(cc.Out, "\n")
	return err
}
