package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// buildFlags holds all flags for the build command.
type buildFlags struct {
	config    string
	dataDir   string
	outDir    string
	assetPath string
	theme     string
	timeout   string

	onePage bool
	twoPage bool
	web     bool
	docx    bool
	webPDF  bool

	quiet   bool
	verbose bool
}

// parseBuildFlags parses build command flags.
func parseBuildFlags(args []string) (*buildFlags, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.dataDir, "data-dir", "", "directory holding resume_<lang>.yaml files")
	fs.StringVarP(&f.outDir, "out-dir", "o", "", "output directory for artifacts")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template/theme directory")
	fs.StringVar(&f.theme, "theme", "", "web resume theme name")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "overall build timeout (e.g., 2m, 90s)")

	fs.BoolVar(&f.onePage, "one-page", false, "build the 1-page PDF variants")
	fs.BoolVar(&f.twoPage, "two-page", false, "build the 2-page PDF variants")
	fs.BoolVar(&f.web, "web", false, "build the web resume and offline bundle")
	fs.BoolVar(&f.docx, "docx", false, "additionally convert PDF variants to DOCX")
	fs.BoolVar(&f.webPDF, "web-pdf", false, "additionally print the offline bundle to PDF")

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
