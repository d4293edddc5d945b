package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pairsum/internal/config"
	"github.com/specialistvlad/pairsum/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL configuration loader that exposes the process
// environment to expressions.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the attributes accepted in a config file. Fields are
// optional; unknown attributes are rejected by the decoder.
type fileRoot struct {
	Sum       *int     `hcl:"sum,optional"`
	File      *string  `hcl:"file,optional"`
	Solvers   []string `hcl:"solvers,optional"`
	LogLevel  *string  `hcl:"log_level,optional"`
	LogFormat *string  `hcl:"log_format,optional"`
}

// Load parses and decodes the HCL file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, newEvalContext(l.environ), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := translate(root, filepath.Dir(path))
	logger.Debug("HCL loading complete.",
		"sum_set", model.Sum != nil,
		"file_set", model.File != nil,
		"solvers", model.Solvers,
	)
	return model, nil
}

// translate converts the decoded file into the format-agnostic model.
func translate(root fileRoot, baseDir string) *config.Model {
	model := &config.Model{
		Sum:       root.Sum,
		Solvers:   root.Solvers,
		LogLevel:  root.LogLevel,
		LogFormat: root.LogFormat,
	}
	if root.File != nil {
		file := *root.File
		if file != "" && !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		model.File = &file
	}
	return model
}
