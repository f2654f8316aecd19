package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvgen <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build resume artifacts (default command)")
	fmt.Fprintln(w, "  doctor     Check external tool availability")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cvgen help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cvgen build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build resume artifacts from resume_<lang>.yaml data files.")
	fmt.Fprintln(w, "Without format flags, the 1-page, 2-page and web formats all build.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formats:")
	fmt.Fprintln(w, "      --one-page            Build the 1-page PDF variants")
	fmt.Fprintln(w, "      --two-page            Build the 2-page PDF variants")
	fmt.Fprintln(w, "      --web                 Build the web resume and offline bundle")
	fmt.Fprintln(w, "      --docx                Additionally convert PDF variants to DOCX")
	fmt.Fprintln(w, "      --web-pdf             Additionally print the offline bundle to PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --data-dir <path>     Directory holding resume_<lang>.yaml files")
	fmt.Fprintln(w, "  -o, --out-dir <path>      Output directory for artifacts")
	fmt.Fprintln(w, "      --asset-path <path>   Custom template/theme directory")
	fmt.Fprintln(w, "      --theme <name>        Web resume theme name")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Overall build timeout (e.g., 2m, 90s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: cvgen doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that pdflatex, pandoc, node and a browser are available.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cvgen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cvgen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
