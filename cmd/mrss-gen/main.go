package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/go-homedir"

	"github.com/wearelucid/brightsign-mrss-server/pkg/config"
	"github.com/wearelucid/brightsign-mrss-server/pkg/feed"
	"github.com/wearelucid/brightsign-mrss-server/pkg/scan"
)

// Opts with all CLI options
type Opts struct {
	Folder string `short:"f" long:"folder" env:"MRSS_FOLDER" default:"/var/www/html" description:"folder containing the media files"`
	DryRun bool   `long:"dry-run" description:"build all feeds but don't write them"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting mrss-gen version %s", revision)

	if err := run(opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// run generates the root feed and one feed per immediate subfolder, all
// written into the root folder. Folders fail independently: an error in one
// feed is logged and the remaining feeds still generate.
func run(opts Opts) error {
	root, err := homedir.Expand(opts.Folder)
	if err != nil {
		return fmt.Errorf("resolve folder %q: %w", opts.Folder, err)
	}

	cfg := config.Load(root)
	log.Printf("[DEBUG] base url %s, %d recognized extensions", cfg.BaseURL, len(cfg.Extensions))

	gen := feed.NewGenerator(cfg)

	var failed int
	if err := generate(gen, root, "", filepath.Join(root, "mrss.xml"), opts.DryRun); err != nil {
		log.Printf("[ERROR] root feed: %v", err)
		failed++
	}

	subs, err := scan.Subdirs(root)
	if err != nil {
		return fmt.Errorf("list subfolders of %s: %w", root, err)
	}
	for _, sub := range subs {
		out := filepath.Join(root, sub+".xml")
		if err := generate(gen, filepath.Join(root, sub), sub+"/", out, opts.DryRun); err != nil {
			log.Printf("[ERROR] feed for %s: %v", sub, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d feeds failed", failed, len(subs)+1)
	}
	return nil
}

// generate builds one folder's feed and writes it unless dryRun is set
func generate(gen *feed.Generator, folder, urlPrefix, outFile string, dryRun bool) error {
	doc, err := gen.Build(folder, urlPrefix)
	if err != nil {
		return err
	}

	if dryRun {
		log.Printf("[INFO] would generate %s (%d items)", outFile, len(doc.Entries))
		return nil
	}

	if err := feed.WriteFile(doc, outFile); err != nil {
		return err
	}
	log.Printf("[INFO] generated %s (%d items)", outFile, len(doc.Entries))
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stdout), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
