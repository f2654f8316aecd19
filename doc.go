// Package cvgen builds every deliverable of a personal CV from
// language-keyed YAML resume data: one- and two-page PDFs (and
// optionally DOCX) through LaTeX templates and pdflatex/pandoc, and a
// web resume in JSON Resume format rendered to per-language HTML pages
// plus a single-file offline bundle.
//
// Basic usage:
//
//	svc, err := cvgen.New(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	report, err := svc.Build(ctx, cvgen.Selection{})
//
// An empty Selection builds everything. Per-variant failures are
// collected in the report and do not abort the remaining variants.
package cvgen
