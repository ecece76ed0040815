// Command exticons writes the browser extension icons: a blue circle on
// white at 16, 48 and 128 px, as public/icon{size}.png.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

var version = ""

func displayVersion() string {
	if version != "" {
		return version
	}
	return "dev"
}

type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	var ue usageError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.As(err, &ue):
		os.Exit(2)
	default:
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("exticons", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "JSON config file")
		dirFlag     = fs.String("dir", "public", "output directory")
		sizesFlag   = fs.String("sizes", "16,48,128", "comma-separated icon sizes in px")
		colorFlag   = fs.String("color", "#4285f4", "circle color (#rrggbb or color name)")
		bgFlag      = fs.String("background", "white", "background color")
		rendFlag    = fs.String("renderer", "crisp", "crisp (no anti-aliasing) or smooth")
		icoFlag     = fs.String("ico", "", "also write an .ico bundle of all sizes to this path")
		mkdirFlag   = fs.Bool("mkdir", false, "create the output directory if missing")
		verboseFlag = fs.Bool("v", false, "debug logging")
		versionFlag = fs.Bool("version", false, "print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err}
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return usageError{fmt.Errorf("unexpected arguments: %v", fs.Args())}
	}
	if *versionFlag {
		fmt.Fprintf(stdout, "exticons %s\n", displayVersion())
		return nil
	}

	logger := newLogger(stderr, *verboseFlag)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("load config")
		return err
	}

	// Flags given explicitly win over the config file.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = *dirFlag
		case "sizes":
			sizes, err := parseSizes(*sizesFlag)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Sizes = sizes
		case "color":
			cfg.Color = *colorFlag
		case "background":
			cfg.Background = *bgFlag
		case "renderer":
			cfg.Renderer = *rendFlag
		case "ico":
			cfg.ICO = *icoFlag
		case "mkdir":
			cfg.MakeDir = *mkdirFlag
		}
	})
	if flagErr != nil {
		logger.Error().Err(flagErr).Msg("invalid -sizes")
		return usageError{flagErr}
	}

	g, err := cfg.generator(logger)
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}
	logger.Debug().Str("version", displayVersion()).Str("dir", cfg.Dir).Ints("sizes", cfg.Sizes).
		Str("renderer", cfg.Renderer).Msg("starting")

	if err := g.Run(); err != nil {
		logger.Error().Err(err).Msg("generate icons")
		return err
	}
	return nil
}
