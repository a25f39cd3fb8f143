// Package scaffold wraps a generated parameters block into a complete
// declarative Jenkinsfile skeleton, ready to paste into a repository and
// grow real stages in.
package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const templateName = "templates/jenkinsfile"

// Option configures the scaffold before construction.
type Option func(*config)

type config struct {
	templateFS fs.FS
	engine     *Engine
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithEngine injects a pre-built template engine.
func WithEngine(engine *Engine) Option {
	return func(cfg *config) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// RenderOptions carries per-render knobs.
type RenderOptions struct {
	// Agent is the pipeline agent directive body; defaults to any.
	Agent string

	// Stages names the placeholder stages to emit; defaults to Build.
	Stages []string
}

// Scaffold renders Jenkinsfile skeletons around parameter blocks.
type Scaffold struct {
	engine *Engine
}

// New constructs the scaffold applying any provided options.
func New(options ...Option) (*Scaffold, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine := cfg.engine
	if engine == nil {
		if cfg.templateFS == nil {
			cfg.templateFS = TemplatesFS()
		}
		built, err := NewEngine(
			WithFS(cfg.templateFS),
			WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, err
		}
		engine = built
	}

	return &Scaffold{engine: engine}, nil
}

// Render embeds the parameters block into a Jenkinsfile skeleton. The block
// arrives as produced by the generator and is indented to sit inside the
// pipeline directive.
func (s *Scaffold) Render(block string, options RenderOptions) (string, error) {
	if s == nil || s.engine == nil {
		return "", fmt.Errorf("scaffold: not initialised")
	}

	agent := strings.TrimSpace(options.Agent)
	if agent == "" {
		agent = "any"
	}
	stages := options.Stages
	if len(stages) == 0 {
		stages = []string{"Build"}
	}

	return s.engine.RenderTemplate(templateName, map[string]any{
		"agent":      agent,
		"parameters": indentBlock(block, "    "),
		"stages":     stages,
	})
}

// indentBlock prefixes every non-empty line so the block nests one level
// inside the pipeline directive.
func indentBlock(block, prefix string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
