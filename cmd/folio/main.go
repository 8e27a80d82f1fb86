/*
Command folio renders pages of e-books to PNG images.

Usage:

	folio [flags] chapter.xhtml
	folio [flags] --epub book.epub

A chapter is paginated with the configured font family, size and page
geometry, and the selected page is rasterized to a PNG file. Settings are
read from a YAML file (see package parameters) and may be overridden by
flags.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/folio/backend/canvas"
	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/font/fontregistry"
	"github.com/npillmayer/folio/core/locate/resources"
	"github.com/npillmayer/folio/core/parameters"
	"github.com/npillmayer/folio/engine/paginate"
	"github.com/npillmayer/folio/engine/reader"
	"github.com/npillmayer/folio/input/epub"
	"github.com/npillmayer/folio/input/xhtml"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

// tracer traces with key 'folio.core'
func tracer() tracing.Trace {
	return tracing.Select("folio.core")
}

type options struct {
	config, fonts, family string
	systemFonts           bool
	size                  float32
	width, height         int
	hmargin, vmargin      string
	page, chapter         int
	out, trace, book      string
	all                   bool
}

func main() {
	initDisplay()
	opts := parseFlags()
	if err := initTracing(opts.trace); err != nil {
		pterm.Error.Println("error configuring tracing: " + err.Error())
		os.Exit(1)
	}
	if err := run(opts); err != nil {
		pterm.Error.Println(core.UserMessage(err))
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
}

func parseFlags() options {
	var opts options
	pflag.StringVarP(&opts.config, "config", "c", "", "Settings file (YAML)")
	pflag.StringVar(&opts.fonts, "fonts", "", "Directory to scan for font files")
	pflag.BoolVar(&opts.systemFonts, "system-fonts", false, "Scan fonts installed on the system")
	pflag.StringVarP(&opts.family, "family", "f", "", "Font family")
	pflag.Float32VarP(&opts.size, "size", "s", 0, "Font size in points")
	pflag.IntVarP(&opts.width, "width", "W", 0, "Page width in pixels")
	pflag.IntVarP(&opts.height, "height", "H", 0, "Page height in pixels")
	pflag.StringVar(&opts.hmargin, "hmargin", "", "Horizontal margin, e.g. 16px or 5mm")
	pflag.StringVar(&opts.vmargin, "vmargin", "", "Vertical margin, e.g. 16px or 5mm")
	pflag.StringVarP(&opts.book, "epub", "e", "", "EPUB file to read")
	pflag.IntVar(&opts.chapter, "chapter", 1, "Chapter to render (EPUB only)")
	pflag.IntVarP(&opts.page, "page", "p", 1, "Page to render")
	pflag.BoolVarP(&opts.all, "all", "a", false, "Render all pages of the chapter")
	pflag.StringVarP(&opts.out, "out", "o", "page.png", "Output PNG file")
	pflag.StringVarP(&opts.trace, "trace", "t", "Error", "Trace level [Debug|Info|Error]")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: folio [flags] chapter.xhtml | folio [flags] --epub book.epub")
		pflag.PrintDefaults()
	}
	pflag.Parse()
	return opts
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range []string{"folio.core", "folio.font", "folio.layout", "folio.raster", "folio.resources"} {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// settings loads the settings file, if any, and applies flag overrides.
func settings(opts options) (parameters.Settings, error) {
	s := parameters.DefaultSettings()
	if opts.config != "" {
		var err error
		if s, err = parameters.LoadSettings(opts.config); err != nil {
			return s, err
		}
	}
	if opts.fonts != "" {
		s.Fonts = opts.fonts
	}
	if opts.family != "" {
		s.Family = opts.family
	}
	if opts.size > 0 {
		s.FontSize = opts.size
	}
	if opts.width > 0 {
		s.Page.Width = opts.width
	}
	if opts.height > 0 {
		s.Page.Height = opts.height
	}
	if opts.hmargin != "" {
		s.Margins.Horizontal = opts.hmargin
	}
	if opts.vmargin != "" {
		s.Margins.Vertical = opts.vmargin
	}
	return s, nil
}

func fontRegistry(s parameters.Settings, system bool) *fontregistry.Registry {
	ix := fontregistry.NewIndexer()
	if s.Fonts != "" {
		n, err := ix.Scan(s.Fonts)
		if err != nil {
			pterm.Warning.Println(core.UserMessage(err))
		}
		tracer().Infof("found %d font files in %s", n, s.Fonts)
	}
	if system {
		tracer().Infof("found %d system font files", ix.ScanSystemFonts())
	}
	return fontregistry.NewRegistry(ix)
}

func run(opts options) error {
	s, err := settings(opts)
	if err != nil {
		return err
	}
	reg := fontRegistry(s, opts.systemFonts)
	conf, err := s.TypesetConfig(reg)
	if err != nil {
		return err
	}
	pterm.Info.Printf("typesetting with %s at %gpt on %dx%d pages\n",
		conf.Family.Name, conf.PointSize, conf.PageWidth, conf.PageHeight)
	ctx := context.Background()
	var pages []*paginate.Page
	switch {
	case opts.book != "":
		pages, err = bookPages(ctx, opts, conf)
	case pflag.NArg() == 1:
		pages, err = chapterPages(ctx, pflag.Arg(0), conf)
	default:
		pflag.Usage()
		return core.Error(core.EINVALID, "no input document given")
	}
	if err != nil {
		return err
	}
	pterm.Info.Printf("chapter has %d pages\n", len(pages))
	if opts.all {
		for i, page := range pages {
			if err := render(page, conf, numbered(opts.out, i+1)); err != nil {
				return err
			}
		}
		return nil
	}
	if opts.page < 1 || opts.page > len(pages) {
		return core.Error(core.EINVALID, "no page %d in chapter of %d pages", opts.page, len(pages))
	}
	return render(pages[opts.page-1], conf, opts.out)
}

func chapterPages(ctx context.Context, filename string, conf parameters.TypesetConfig) ([]*paginate.Page, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open %s", filename)
	}
	defer f.Close()
	root, err := xhtml.Parse(f)
	if err != nil {
		return nil, err
	}
	images := resources.DirImages(filepath.Dir(filename))
	return paginate.PaginateAsync(ctx, root, conf, images).Pages(ctx)
}

func bookPages(ctx context.Context, opts options, conf parameters.TypesetConfig) ([]*paginate.Page, error) {
	book, err := epub.Open(opts.book)
	if err != nil {
		return nil, err
	}
	defer book.Close()
	pterm.Info.Printf("%q has %d chapters\n", book.Title, book.ChapterCount())
	r, err := reader.New(ctx, book, conf)
	if err != nil {
		return nil, err
	}
	if opts.chapter > 1 {
		if err = r.GoTo(ctx, opts.chapter-1); err != nil {
			return nil, err
		}
	}
	var pages []*paginate.Page
	chapter, _, n := r.Position()
	for i := 0; i < n; i++ {
		pages = append(pages, r.Page())
		if i < n-1 {
			if err = r.NextPage(ctx); err != nil {
				return nil, err
			}
		}
	}
	tracer().Debugf("collected %d pages of chapter %d", len(pages), chapter+1)
	return pages, nil
}

func render(page *paginate.Page, conf parameters.TypesetConfig, filename string) error {
	c := canvas.New(conf.PageWidth, conf.PageHeight)
	if err := c.RenderPage(page, conf.Family); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %s", filename)
	}
	if err = c.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write %s", filename)
	}
	pterm.Success.Printf("wrote %s (%s)\n", filename, page)
	return nil
}

// numbered inserts a page number before the extension of a file name.
func numbered(filename string, n int) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(filename, ext), n, ext)
}
