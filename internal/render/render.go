// Package render produces the two deterministic page layouts (Modern and
// Europass) as HTML and prints them to PDF through headless Chrome.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/coseus/cvbuilder/internal/keywords"
	"github.com/coseus/cvbuilder/internal/resume"
	"github.com/coseus/cvbuilder/internal/textutil"
)

// pdfTimeout bounds one headless-Chrome print.
const pdfTimeout = 60 * time.Second

// Error represents a rendering failure.
type Error struct {
	Layout  Layout
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render %s: %s: %v", e.Layout, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// templateData is the payload both layouts consume.
type templateData struct {
	Doc         *resume.Document
	ContactLine []string
	SkillsLines []string
}

var templateFuncs = template.FuncMap{
	"join":    strings.Join,
	"bullets": textutil.SplitBullets,
}

var (
	modernTmpl   = template.Must(template.New("modern").Funcs(templateFuncs).Parse(modernTemplate))
	europassTmpl = template.Must(template.New("europass").Funcs(templateFuncs).Parse(europassTemplate))
)

// HTML renders the document into the requested layout.
func HTML(d *resume.Document, layout Layout) (string, error) {
	d.EnsureDefaults()
	data := templateData{
		Doc:         d,
		ContactLine: contactLine(d),
		SkillsLines: skillsLines(d),
	}

	var tmpl *template.Template
	switch layout {
	case LayoutModern:
		tmpl = modernTmpl
	case LayoutEuropass:
		tmpl = europassTmpl
	default:
		return "", &Error{Layout: layout, Message: "unknown layout"}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &Error{Layout: layout, Message: "template execution failed", Cause: err}
	}
	return buf.String(), nil
}

// PDF renders the document to PDF bytes via headless Chrome. CHROME_PATH
// overrides the browser binary.
func PDF(ctx context.Context, d *resume.Document, layout Layout) ([]byte, error) {
	html, err := HTML(d, layout)
	if err != nil {
		return nil, err
	}
	pdf, err := printHTML(ctx, html)
	if err != nil {
		return nil, &Error{Layout: layout, Message: "PDF print failed", Cause: err}
	}
	return pdf, nil
}

func printHTML(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()
	runCtx, cancelRun := context.WithTimeout(browserCtx, pdfTimeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "cvbuilder-")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> 8.27 x 11.69 inches.
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}

// contactLine assembles the compact header contact strip.
func contactLine(d *resume.Document) []string {
	var parts []string
	for _, v := range []string{d.Email, d.Phone, d.Location, d.LinkedIn, d.GitHub, d.Website} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}

// skillsLines prefers the per-job grouped technical-skills lines and falls
// back to the document's own skill groups.
func skillsLines(d *resume.Document) []string {
	if len(d.Job.TechnicalSkillsLines) > 0 {
		return d.Job.TechnicalSkillsLines
	}
	if len(d.Job.Buckets) > 0 {
		return keywords.TechnicalSkillsLines(d.Job.Buckets)
	}
	var lines []string
	for _, g := range d.Skills {
		if len(g.Items) > 0 {
			lines = append(lines, g.Category+": "+strings.Join(g.Items, ", "))
		}
	}
	return lines
}
