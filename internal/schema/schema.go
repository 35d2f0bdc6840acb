// Package schema validates composed documents against user-supplied CUE
// schemas.
package schema

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	lerrors "github.com/laminakit/lamina/internal/errors"
)

// Checker holds a compiled CUE schema.
type Checker struct {
	ctx    *cue.Context
	schema cue.Value
	path   string
}

// LoadSchema compiles a CUE schema file. The file's top-level struct is the
// constraint applied to composed documents.
func LoadSchema(path string) (*Checker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lerrors.NewLoadError(fmt.Sprintf("reading schema: %v", err), path, "")
	}

	ctx := cuecontext.New()
	schema := ctx.CompileBytes(data, cue.Filename(path))
	if schema.Err() != nil {
		return nil, lerrors.NewLoadError(
			fmt.Sprintf("compiling schema: %v", schema.Err()),
			path,
			"",
		)
	}

	return &Checker{ctx: ctx, schema: schema, path: path}, nil
}

// Check unifies a composed document with the schema and reports any
// constraint violations. The document is never mutated.
func (c *Checker) Check(document map[string]any) error {
	value := c.ctx.Encode(document)
	if value.Err() != nil {
		return fmt.Errorf("encoding document: %w", value.Err())
	}

	unified := c.schema.Unify(value)
	if unified.Err() != nil {
		return fmt.Errorf("%w: %v", lerrors.ErrValidation, unified.Err())
	}

	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", lerrors.ErrValidation, err)
	}

	return nil
}
