package main

import (
	"fmt"
	"io"
	"os"

	"github.com/domfmt/go-xmldoc/encode"
	"github.com/domfmt/go-xmldoc/format"
	"github.com/domfmt/go-xmldoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Pretty bool `cli:"name=p aliases=pretty desc='pretty print output'"`
	Color  bool `cli:"name=color desc='encode with color'"`

	Headless bool `cli:"name=headless desc='omit the XML declaration'"`
	Width    int  `cli:"name=w aliases=width desc='wrap attributes at this column'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(fmat),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	fmat := format.XMLFormat
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.Option{
		encode.EncodeFormat(fmat),
		encode.Pretty(cfg.Pretty),
		encode.Headless(cfg.Headless),
		encode.Width(cfg.Width),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
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

type ConvertConfig struct {
	*MainConfig

	AllowEmptyTags bool `cli:"name=allowEmptyTags desc='use explicit closing tags for empty elements'"`
	Convert        *cli.Command
}

func (cfg *ConvertConfig) encOpts(w io.Writer) []encode.Option {
	return append(cfg.MainConfig.encOpts(w), encode.AllowEmptyTags(cfg.AllowEmptyTags))
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}
