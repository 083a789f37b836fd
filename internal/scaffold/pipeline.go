// Package scaffold runs the stages that turn a create-vite project into a
// configured Vue 3 + TypeScript skeleton.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/barisgit/vitekit/config"
	"github.com/barisgit/vitekit/internal/frontend"
	"github.com/barisgit/vitekit/internal/git"
	"github.com/barisgit/vitekit/internal/logging"
	"github.com/barisgit/vitekit/internal/patch"
	"github.com/barisgit/vitekit/internal/pkgmanager"
	"github.com/barisgit/vitekit/internal/runner"
	"github.com/barisgit/vitekit/internal/templates"
)

// Stage names reported in StageError
const (
	StagePreflight   = "preflight"
	StageCreate      = "create"
	StageInstall     = "install"
	StageRepository  = "repository"
	StageRouter      = "router"
	StageTailwind    = "tailwind"
	StagePinia       = "pinia"
	StageESLint      = "eslint"
	StageLintScripts = "lint-scripts"
	StageAutoImport  = "auto-import"
	StageComponents  = "components"
	StageUI          = "ui-frameworks"
	StageViteConfig  = "vite-config"
	StageRouterFiles = "router-files"
	StageStore       = "store"
	StageMain        = "main"
	StageFinalize    = "finalize"
)

// Files patched in place
const (
	ViteConfigFile  = "vite.config.ts"
	MainFile        = "src/main.ts"
	PackageJSONFile = "package.json"
)

// Options tune a pipeline run
type Options struct {
	Template      string // create-vite template
	GitBinary     string
	CommitMessage string
	SkipPreflight bool
}

// Pipeline scaffolds projects one stage at a time
type Pipeline struct {
	runner    runner.Runner
	catalog   *frontend.RegistryManager
	templates *templates.Manager
	reporter  *logging.Reporter
	options   Options
}

// New creates a pipeline
func New(r runner.Runner, catalog *frontend.RegistryManager, tm *templates.Manager, reporter *logging.Reporter, options Options) *Pipeline {
	if options.Template == "" {
		options.Template = "vue-ts"
	}
	if options.CommitMessage == "" {
		options.CommitMessage = "Initial commit"
	}
	return &Pipeline{
		runner:    r,
		catalog:   catalog,
		templates: tm,
		reporter:  reporter,
		options:   options,
	}
}

type stage struct {
	name string
	run  func(ctx context.Context, s *session) error
}

// session is the state of a single run
type session struct {
	cfg     *config.ProjectConfig
	parent  string
	root    string
	pm      *pkgmanager.Manager
	repo    *git.Repo
	mutator *Mutator
	steps   map[string]InstallStep
	report  *Report
}

// Run scaffolds cfg.Name inside parent. Fatal failures are returned as
// *StageError; recoverable problems end up in Report.Warnings.
func (p *Pipeline) Run(ctx context.Context, parent string, cfg *config.ProjectConfig) (*Report, error) {
	if errs := config.Validate(cfg); errs.HasErrors() {
		return nil, errs
	}

	parent, err := filepath.Abs(parent)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", parent, err)
	}
	root := filepath.Join(parent, cfg.Name)

	pm, err := pkgmanager.New(p.runner, p.catalog, cfg.PackageManager)
	if err != nil {
		return nil, err
	}

	plan, err := InstallPlan(cfg, p.catalog)
	if err != nil {
		return nil, err
	}
	steps := make(map[string]InstallStep, len(plan))
	for _, step := range plan {
		steps[step.Name] = step
	}

	s := &session{
		cfg:     cfg,
		parent:  parent,
		root:    root,
		pm:      pm,
		repo:    git.NewRepo(p.runner, p.options.GitBinary, root),
		mutator: NewMutator(root, p.templates),
		steps:   steps,
		report:  &Report{Root: root},
	}

	for _, st := range p.stages() {
		if err := ctx.Err(); err != nil {
			return s.report, &StageError{Stage: st.name, Err: err}
		}
		p.reporter.Debugf("stage %s", st.name)
		if err := st.run(ctx, s); err != nil {
			return s.report, &StageError{Stage: st.name, Err: err}
		}
	}

	return s.report, nil
}

func (p *Pipeline) stages() []stage {
	return []stage{
		{StagePreflight, p.preflight},
		{StageCreate, p.create},
		{StageInstall, p.install},
		{StageRepository, p.repository},
		{StageRouter, p.router},
		{StageTailwind, p.tailwind},
		{StagePinia, p.pinia},
		{StageESLint, p.eslint},
		{StageLintScripts, p.lintScripts},
		{StageAutoImport, p.autoImport},
		{StageComponents, p.components},
		{StageUI, p.uiFrameworks},
		{StageViteConfig, p.viteConfig},
		{StageRouterFiles, p.routerFiles},
		{StageStore, p.store},
		{StageMain, p.mainEntry},
		{StageFinalize, p.finalize},
	}
}

func (p *Pipeline) preflight(ctx context.Context, s *session) error {
	if p.options.SkipPreflight {
		p.reporter.Debugf("preflight checks skipped")
		return nil
	}

	checker := &pkgmanager.Checker{Runner: p.runner, Catalog: p.catalog, GitBinary: p.options.GitBinary}
	results := checker.Check(ctx, s.cfg.PackageManager)
	for _, r := range results {
		if r.OK() {
			p.reporter.Debugf("%s %s", r.Tool, r.Version)
		}
	}
	return pkgmanager.Failed(results)
}

func (p *Pipeline) create(ctx context.Context, s *session) error {
	if _, err := os.Stat(s.root); err == nil {
		return fmt.Errorf("directory %s already exists", s.root)
	}

	p.reporter.Step("🚀 Creating %s with create-vite...", s.cfg.Name)
	if err := s.pm.Create(ctx, s.parent, s.cfg.Name, p.options.Template); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	if info, err := os.Stat(s.root); err != nil || !info.IsDir() {
		return fmt.Errorf("generator did not create %s", s.root)
	}
	return nil
}

func (p *Pipeline) install(ctx context.Context, s *session) error {
	p.reporter.Step("📦 Installing dependencies...")
	if err := s.pm.Install(ctx, s.root); err != nil {
		return fmt.Errorf("failed to install dependencies: %w", err)
	}
	return nil
}

func (p *Pipeline) repository(ctx context.Context, s *session) error {
	p.reporter.Step("🔧 Initializing git repository...")
	if err := s.repo.Init(ctx); err != nil {
		return err
	}

	p.reporter.Step("📝 Writing .gitignore...")
	return p.writeFeature(s, templates.FeatureBase)
}

func (p *Pipeline) router(ctx context.Context, s *session) error {
	if !s.cfg.UseRouter {
		return nil
	}
	p.reporter.Step("📦 Installing Vue Router...")
	return p.installStep(ctx, s, frontend.FeatureRouter)
}

func (p *Pipeline) tailwind(ctx context.Context, s *session) error {
	if !s.cfg.UseTailwind {
		return nil
	}

	p.reporter.Step("🎨 Installing and configuring Tailwind CSS...")
	if err := p.installStep(ctx, s, frontend.FeatureTailwind); err != nil {
		return err
	}
	if err := s.pm.Exec(ctx, s.root, p.catalog.Tools().TailwindInit...); err != nil {
		return fmt.Errorf("failed to initialize tailwind: %w", err)
	}
	if err := p.writeFeature(s, frontend.FeatureTailwind); err != nil {
		return err
	}

	return p.patch(ctx, s, MainFile, func(ctx context.Context, src []byte) ([]byte, error) {
		return patch.PrependImport(ctx, src, patch.Import{Source: "./index.css"})
	})
}

func (p *Pipeline) pinia(ctx context.Context, s *session) error {
	if !s.cfg.UsePinia {
		return nil
	}

	p.reporter.Step("📦 Installing Pinia...")
	if err := p.installStep(ctx, s, frontend.FeaturePinia); err != nil {
		return err
	}

	if _, ok := s.steps[frontend.FeaturePiniaPersist]; ok {
		p.reporter.Step("📦 Installing pinia-plugin-persistedstate...")
		return p.installStep(ctx, s, frontend.FeaturePiniaPersist)
	}
	return nil
}

func (p *Pipeline) eslint(ctx context.Context, s *session) error {
	p.reporter.Step("🧹 Adding ESLint config...")
	if err := s.pm.Exec(ctx, s.root, p.catalog.Tools().ESLintConfig...); err != nil {
		return fmt.Errorf("failed to add eslint config: %w", err)
	}
	return nil
}

func (p *Pipeline) lintScripts(ctx context.Context, s *session) error {
	p.reporter.Step("📝 Adding lint scripts to package.json...")
	return p.patch(ctx, s, PackageJSONFile, func(_ context.Context, src []byte) ([]byte, error) {
		return patch.LintScripts(src)
	})
}

func (p *Pipeline) autoImport(ctx context.Context, s *session) error {
	p.reporter.Step("📦 Adding unplugin-auto-import...")
	if err := p.installStep(ctx, s, frontend.FeatureAutoImport); err != nil {
		return err
	}
	return p.writeFeature(s, frontend.FeatureAutoImport)
}

func (p *Pipeline) components(ctx context.Context, s *session) error {
	p.reporter.Step("📦 Adding unplugin-vue-components...")
	if err := p.installStep(ctx, s, frontend.FeatureComponents); err != nil {
		return err
	}
	return p.writeFeature(s, frontend.FeatureComponents)
}

func (p *Pipeline) uiFrameworks(ctx context.Context, s *session) error {
	for _, id := range s.cfg.UIFrameworks {
		fw, _ := p.catalog.GetFramework(id)
		p.reporter.Step("📦 Installing %s...", fw.DisplayName)
		if err := p.installStep(ctx, s, "ui:"+fw.ID); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) viteConfig(ctx context.Context, s *session) error {
	resolvers, err := p.catalog.Resolvers(s.cfg.UIFrameworks)
	if err != nil {
		return err
	}
	opts := patch.ViteOptions{AutoImports: AutoImports(s.cfg), Resolvers: resolvers}

	p.reporter.Step("🔧 Updating %s...", ViteConfigFile)
	return p.patch(ctx, s, ViteConfigFile, func(ctx context.Context, src []byte) ([]byte, error) {
		return patch.ViteConfig(ctx, src, opts)
	})
}

func (p *Pipeline) routerFiles(ctx context.Context, s *session) error {
	if !s.cfg.UseRouter {
		return nil
	}
	p.reporter.Step("🧭 Configuring Vue Router...")
	return p.writeFeature(s, frontend.FeatureRouter)
}

func (p *Pipeline) store(ctx context.Context, s *session) error {
	if !s.cfg.UsePinia {
		return nil
	}
	p.reporter.Step("🗃️  Configuring Pinia...")
	return p.writeFeature(s, frontend.FeaturePinia)
}

func (p *Pipeline) mainEntry(ctx context.Context, s *session) error {
	opts := patch.MainOptions{
		Router:       s.cfg.UseRouter,
		Pinia:        s.cfg.UsePinia,
		PiniaPersist: s.cfg.UsePinia && s.cfg.UsePiniaPersist,
	}

	p.reporter.Step("🔧 Updating %s...", MainFile)
	return p.patch(ctx, s, MainFile, func(ctx context.Context, src []byte) ([]byte, error) {
		return patch.Bootstrap(ctx, src, opts)
	})
}

func (p *Pipeline) finalize(ctx context.Context, s *session) error {
	p.reporter.Step("🧹 Running ESLint fix...")
	if err := s.pm.RunScript(ctx, s.root, "lint:fix"); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			p.reporter.Warn(s.report.warn("ESLint reported problems (exit code %d); fix them manually and create the initial commit yourself", exitErr.Code))
		} else {
			p.reporter.Warn(s.report.warn("ESLint could not run (%v); fix the problems manually and create the initial commit yourself", err))
		}
		return nil
	}
	s.report.LintPassed = true

	p.reporter.Step("📝 Creating initial commit...")
	if err := s.repo.AddAll(ctx); err != nil {
		return err
	}
	if err := s.repo.Commit(ctx, p.options.CommitMessage); err != nil {
		return err
	}
	s.report.Committed = true
	return nil
}

// installStep installs the packages planned under name, if any
func (p *Pipeline) installStep(ctx context.Context, s *session, name string) error {
	step, ok := s.steps[name]
	if !ok {
		return nil
	}
	if err := s.pm.Add(ctx, s.root, step.Packages...); err != nil {
		return fmt.Errorf("failed to install %s: %w", name, err)
	}
	return nil
}

func (p *Pipeline) writeFeature(s *session, feature string) error {
	written, err := s.mutator.WriteFeature(feature)
	s.report.Files = append(s.report.Files, written...)
	if err != nil {
		return err
	}
	for _, f := range written {
		p.reporter.Debugf("wrote %s", f)
	}
	return nil
}

// patch applies fn to rel; a missing anchor becomes a warning
func (p *Pipeline) patch(ctx context.Context, s *session, rel string, fn PatchFunc) error {
	changed, err := s.mutator.Patch(ctx, rel, fn)
	if err != nil {
		if errors.Is(err, patch.ErrAnchorNotFound) {
			p.reporter.Warn(s.report.warn("%s was left unchanged: %v", rel, err))
			return nil
		}
		return err
	}
	if changed {
		s.report.Patched = append(s.report.Patched, rel)
	}
	return nil
}
