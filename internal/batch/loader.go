package batch

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/romanparse/internal/ctxlog"
	"github.com/specialistvlad/romanparse/internal/fsutil"
)

// Entry is one numeral declared in a batch file.
type Entry struct {
	Name   string
	Input  string
	Expect *int64
	Range  hcl.Range
}

// fileSchema accepts only numeral blocks at the top level.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "numeral", LabelNames: []string{"name"}},
	},
}

// numeralBody is the decoded content of a numeral block.
type numeralBody struct {
	Value  string `hcl:"value"`
	Expect *int64 `hcl:"expect,optional"`
}

// Load parses every batch file found under paths, in file order. A path may
// be a single .hcl file or a directory.
func Load(ctx context.Context, paths ...string) ([]Entry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Batch loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered batch files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()

	var entries []Entry
	seen := make(map[string]hcl.Range)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		content, diags := hclFile.Body.Content(fileSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range content.Blocks {
			name := block.Labels[0]
			if first, dup := seen[name]; dup {
				return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, hcl.Diagnostics{{
					Severity: hcl.DiagError,
					Summary:  "Duplicate numeral block",
					Detail:   fmt.Sprintf("A numeral named %q was already declared at %s.", name, first),
					Subject:  &block.DefRange,
				}})
			}
			seen[name] = block.DefRange

			var body numeralBody
			if diags := gohcl.DecodeBody(block.Body, evalCtx, &body); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode numeral %q in %s: %w", name, file, diags)
			}

			entries = append(entries, Entry{
				Name:   name,
				Input:  body.Value,
				Expect: body.Expect,
				Range:  block.DefRange,
			})
		}
	}

	logger.Debug("Batch loading complete.", "files", len(files), "numerals", len(entries))
	return entries, nil
}
