// Package scaffold generates a new website project skeleton.
//
// A run is strictly sequential: project folder, directory tree, boilerplate
// sources, vendor stylesheets, views, favicon, extra resources, robots.txt and
// finally the detached build step. Failures are either fatal, which stops the
// run, or recoverable, in which case the Prompter decides whether the run goes
// on without the failed step.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/tacogips/sitekit/internal/config"
	"github.com/tacogips/sitekit/internal/debug"
	"github.com/tacogips/sitekit/internal/fsutil"
	"github.com/tacogips/sitekit/internal/process"
	"github.com/tacogips/sitekit/internal/resource"
	"github.com/tacogips/sitekit/internal/template/fill"
	"github.com/tacogips/sitekit/internal/template/header"
	"github.com/tacogips/sitekit/internal/vendorcss"
)

// DefaultName is the project name used when none is given.
const DefaultName = "untitled"

// Prompter asks the operator whether to continue after a recoverable failure.
type Prompter interface {
	Confirm(message string) (bool, error)
}

// Reporter receives progress messages.
type Reporter interface {
	Progress(msg string)
	Success(msg string)
	Warning(msg string)
}

// Launcher starts the build command without waiting for it.
type Launcher func(cmd process.Command) (int, error)

// Options configures a scaffold run.
type Options struct {
	// Name is the project folder name.
	Name string
	// Path is the parent directory of the project folder.
	Path string
	// BaseDir resolves relative favicon, resource and build script paths.
	BaseDir string
	// Favicon is an optional svg file, or a directory holding favicon.svg.
	Favicon string
	// Resources are optional files and directories to import into res/.
	Resources []string
	// Config supplies widths, template values, vendor and build settings.
	Config *config.Config
	// SkipVendor disables vendor stylesheet downloads.
	SkipVendor bool
	// SkipBuild disables the build step.
	SkipBuild bool
	// Prompter handles recoverable failures. Nil makes them fatal.
	Prompter Prompter
	// Reporter receives progress messages. Nil discards them.
	Reporter Reporter
	// Fetcher downloads vendor stylesheets. Nil builds one from Config.
	Fetcher *vendorcss.Fetcher
	// Launcher starts the build step. Nil uses process.StartDetached.
	Launcher Launcher
}

// Result summarizes a completed run.
type Result struct {
	// ProjectDir is the absolute project root.
	ProjectDir string
	// Files lists generated files relative to ProjectDir.
	Files []string
	// Vendor holds one entry per vendor resource.
	Vendor []vendorcss.Result
	// Imported is nil when no resources were requested.
	Imported *resource.ImportResult
	// Skipped lists recoverable steps the operator chose to skip.
	Skipped []Step
	// BuildPID is the pid of the launched build step, zero if none.
	BuildPID int
}

// generator carries the state of a single run.
type generator struct {
	opts     Options
	cfg      *config.Config
	root     string
	tpl      *templates
	reporter Reporter
	result   *Result
}

// Run scaffolds the project described by opts.
func Run(ctx context.Context, opts Options) (*Result, error) {
	debug.DebugSection("[scaffold] Run start")

	g, err := newGenerator(opts)
	if err != nil {
		return nil, err
	}

	steps := []func(context.Context) error{
		g.createProject,
		g.createLayout,
		g.writePython,
		g.writeSass,
		g.writeVendor,
		g.writeViews,
		g.importFavicon,
		g.importResources,
		g.writeRobots,
		g.startBuild,
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return g.result, newFatal(StepOptions, "scaffold interrupted", err)
		}
		if err := g.handle(step(ctx)); err != nil {
			return g.result, err
		}
	}

	debug.DebugSection("[scaffold] Run complete")
	return g.result, nil
}

func newGenerator(opts Options) (*generator, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if err := ValidateName(opts.Name); err != nil {
		return nil, newFatal(StepOptions, "invalid project name", err)
	}

	if opts.Path == "" {
		opts.Path = "."
	}
	parent, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, newFatal(StepOptions, "invalid path provided", err)
	}
	if !fsutil.IsDir(parent) {
		return nil, newFatal(StepOptions, "invalid path provided",
			fmt.Errorf("%s is not a directory", parent))
	}

	if opts.BaseDir == "" {
		opts.BaseDir = parent
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Launcher == nil {
		opts.Launcher = process.StartDetached
	}
	if opts.Fetcher == nil {
		opts.Fetcher = vendorcss.NewFetcher(opts.Config.Vendor.Timeout)
		opts.Fetcher.Concurrency = opts.Config.Vendor.Concurrency
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	rw := header.NewRewriter(opts.Config.Headers.ScriptWidth, opts.Config.Headers.MarkupWidth)
	tpl, err := loadTemplates(rw)
	if err != nil {
		return nil, newFatal(StepOptions, "could not load boilerplate templates", err)
	}

	root := filepath.Join(parent, opts.Name)
	debug.DebugValue("[scaffold] Project dir", root)
	debug.DebugValue("[scaffold] Base dir", opts.BaseDir)

	return &generator{
		opts:     opts,
		cfg:      opts.Config,
		root:     root,
		tpl:      tpl,
		reporter: reporter,
		result:   &Result{ProjectDir: root},
	}, nil
}

// ValidateName checks that name is usable as a single folder name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.New("project name cannot be empty")
	case name == "." || name == "..":
		return fmt.Errorf("project name cannot be %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("project name cannot contain path separators: %s", name)
	}
	return nil
}

// handle turns a recoverable failure into a prompt.
// Declining, or having no prompter, escalates to fatal.
func (g *generator) handle(err error) error {
	if err == nil {
		return nil
	}

	var sErr *Error
	if !errors.As(err, &sErr) {
		return newFatal(StepOptions, "unexpected failure", err)
	}
	if sErr.Severity != Recoverable {
		return sErr
	}

	debug.Debug("[scaffold] Recoverable failure in %s: %v", sErr.Step, sErr)
	if g.opts.Prompter == nil {
		return newFatal(sErr.Step, sErr.Message, sErr.Cause)
	}

	proceed, promptErr := g.opts.Prompter.Confirm(sErr.Error() + ". Do you wish to proceed?")
	if promptErr != nil {
		return newFatal(sErr.Step, "prompt failed", errors.Join(promptErr, sErr))
	}
	if !proceed {
		return newFatal(sErr.Step, "Script canceled by user", errors.Join(ErrCanceled, sErr))
	}

	g.reporter.Warning(fmt.Sprintf("Skipping %s", sErr.Step))
	g.result.Skipped = append(g.result.Skipped, sErr.Step)
	return nil
}

func (g *generator) populate(tpl *fill.Template, rel string, values fill.Values) error {
	if err := tpl.Populate(abs(g.root, rel), values); err != nil {
		return err
	}
	g.result.Files = append(g.result.Files, rel)
	return nil
}

func (g *generator) createProject(context.Context) error {
	g.reporter.Progress("Creating folder for new project")
	if err := fsutil.ReplaceDir(g.root); err != nil {
		return newFatal(StepProject, "Could not create project folder", err)
	}
	return nil
}

func (g *generator) createLayout(context.Context) error {
	g.reporter.Progress("Building out directory structure for the project")
	for _, dir := range Dirs {
		if err := fsutil.CreateDir(abs(g.root, dir)); err != nil {
			return newFatal(StepLayout, "Could not build project directory structure", err)
		}
	}
	return nil
}

func (g *generator) writePython(context.Context) error {
	g.reporter.Progress("Setting up python resources")
	if err := g.populate(g.tpl.routes, RoutesFile, nil); err != nil {
		return newFatal(StepPython, "Could not create routes file", err)
	}
	return nil
}

func (g *generator) writeSass(context.Context) error {
	g.reporter.Progress("Creating sass scripts and pulling in resources")
	values := fill.Values{"font_stack": g.cfg.Project.FontStack}

	for _, f := range []struct {
		tpl *fill.Template
		rel string
	}{
		{g.tpl.styles, StylesFile},
		{g.tpl.basePartial, BasePartialFile},
		{g.tpl.baseModule, BaseModuleFile},
	} {
		if err := g.populate(f.tpl, f.rel, values); err != nil {
			return newFatal(StepSass, "Could not build sass project", err)
		}
	}
	return nil
}

// writeVendor writes the project's own update script, then performs the same
// downloads in process before any view is written.
func (g *generator) writeVendor(ctx context.Context) error {
	blocks := make([]fill.Block, 0, len(g.cfg.Vendor.Resources))
	resources := make([]vendorcss.Resource, 0, len(g.cfg.Vendor.Resources))
	for _, r := range g.cfg.Vendor.Resources {
		blocks = append(blocks, fill.Block{
			Template: g.tpl.updateResource,
			Values:   fill.Values{"name": r.Name, "url": r.URL},
		})
		resources = append(resources, vendorcss.Resource{Name: r.Name, URL: r.URL})
	}

	if err := g.populate(g.tpl.update, UpdateScript, fill.Values{"resources": blocks}); err != nil {
		return newFatal(StepVendor, "Could not pull in external sass resources", err)
	}

	if g.opts.SkipVendor {
		debug.Debug("[scaffold] Vendor download disabled")
		return nil
	}

	g.reporter.Progress("Updating external sass resources")
	results := g.opts.Fetcher.Fetch(ctx, abs(g.root, VendorDir), resources)
	for _, r := range results {
		if r.Err != nil {
			g.reporter.Warning(r.Err.Error())
			continue
		}
		g.reporter.Success(fmt.Sprintf("Successfully populated '%s' (%s)", r.Resource.Name, humanize.Bytes(uint64(r.Bytes))))
	}
	g.result.Vendor = results
	return nil
}

func (g *generator) writeViews(context.Context) error {
	g.reporter.Progress("Creating default views for bottle project")
	if err := g.populate(g.tpl.head, HeadView, fill.Values{"author": g.cfg.Project.Author}); err != nil {
		return newFatal(StepViews, "Could not build default views", err)
	}
	values := fill.Values{
		"title":       g.opts.Name,
		"description": fmt.Sprintf("Welcome to %s!", g.opts.Name),
	}
	if err := g.populate(g.tpl.index, IndexView, values); err != nil {
		return newFatal(StepViews, "Could not build default views", err)
	}
	return nil
}

func (g *generator) importFavicon(context.Context) error {
	if g.opts.Favicon == "" {
		return nil
	}
	g.reporter.Progress("Populating project resources")

	src, err := resource.ResolveFavicon(g.opts.Favicon, g.opts.BaseDir)
	if err != nil {
		return newRecoverable(StepFavicon, "Unable to import favicon image", err)
	}
	if err := fsutil.CopyFile(src, abs(g.root, FaviconFile)); err != nil {
		return newRecoverable(StepFavicon, "Unable to import favicon image", err)
	}
	g.result.Files = append(g.result.Files, FaviconFile)
	return nil
}

func (g *generator) importResources(context.Context) error {
	if len(g.opts.Resources) == 0 {
		return nil
	}

	entries, err := resource.Collect(g.opts.Resources, g.opts.BaseDir)
	var missing *resource.MissingError
	if err != nil && !errors.As(err, &missing) {
		return newFatal(StepResources, "Could not import project resources", err)
	}

	// Whatever was found is imported before asking about the missing paths.
	assignments := resource.Classify(entries, g.cfg.Resources.IgnorePatterns)
	imported, err := resource.Import(assignments, abs(g.root, ResDir))
	g.result.Imported = imported
	if err != nil {
		return newFatal(StepResources, "Could not import project resources", err)
	}
	for _, f := range imported.Files {
		if rel, relErr := filepath.Rel(g.root, f); relErr == nil {
			g.result.Files = append(g.result.Files, filepath.ToSlash(rel))
		}
	}

	if missing != nil {
		return newRecoverable(StepResources, "Unable to find project resources", missing)
	}
	return nil
}

func (g *generator) writeRobots(context.Context) error {
	// An imported robots.txt wins over the default one.
	if fsutil.IsFile(abs(g.root, RobotsFile)) {
		debug.Debug("[scaffold] Keeping imported robots.txt")
		return nil
	}
	if err := g.populate(g.tpl.robots, RobotsFile, nil); err != nil {
		return newFatal(StepRobots, "Could not create default robots.txt", err)
	}
	return nil
}

func (g *generator) startBuild(context.Context) error {
	b := g.cfg.Build
	if g.opts.SkipBuild || b.Script == "" {
		debug.Debug("[scaffold] Build step disabled")
		return nil
	}

	g.reporter.Progress("Generating website in temporary directory")

	src := resource.Resolve(b.Script, g.opts.BaseDir)
	if !fsutil.IsFile(src) {
		return newRecoverable(StepBuild, "Unable to find build script",
			fmt.Errorf("%w: %s", resource.ErrNotFound, src))
	}

	name := filepath.Base(src)
	if err := fsutil.CopyFile(src, filepath.Join(g.root, name)); err != nil {
		return newFatal(StepBuild, "Unable to generate website", err)
	}

	pid, err := g.opts.Launcher(process.Command{
		Name: b.Interpreter,
		Args: append([]string{name}, b.Args...),
		Dir:  g.root,
	})
	if err != nil {
		return newFatal(StepBuild, "Unable to generate website", err)
	}

	g.result.BuildPID = pid
	return nil
}

type nopReporter struct{}

func (nopReporter) Progress(string) {}
func (nopReporter) Success(string)  {}
func (nopReporter) Warning(string)  {}
