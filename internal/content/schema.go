package content

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Shape names an embedded JSON Schema describing normalized content.
type Shape string

const (
	ShapeSite     Shape = "site"
	ShapeProject  Shape = "project"
	ShapeHome     Shape = Shape(PageHome)
	ShapeAbout    Shape = Shape(PageAbout)
	ShapeServices Shape = Shape(PageServices)
	ShapeContact  Shape = Shape(PageContact)
)

// Shapes lists every embedded schema.
var Shapes = []Shape{ShapeSite, ShapeProject, ShapeHome, ShapeAbout, ShapeServices, ShapeContact}

const schemaBaseURL = "https://archsite.schemas.local/content/"

var (
	compileOnce sync.Once
	compiled    map[Shape]*jsonschema.Schema
	compileErr  error
)

func compileSchemas() (map[Shape]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		for _, shape := range Shapes {
			data, err := schemaFS.ReadFile("schemas/" + string(shape) + ".json")
			if err != nil {
				compileErr = fmt.Errorf("reading %s schema: %w", shape, err)
				return
			}
			if err := c.AddResource(schemaBaseURL+string(shape)+".json", bytes.NewReader(data)); err != nil {
				compileErr = fmt.Errorf("loading %s schema: %w", shape, err)
				return
			}
		}
		out := make(map[Shape]*jsonschema.Schema, len(Shapes))
		for _, shape := range Shapes {
			s, err := c.Compile(schemaBaseURL + string(shape) + ".json")
			if err != nil {
				compileErr = fmt.Errorf("compiling %s schema: %w", shape, err)
				return
			}
			out[shape] = s
		}
		compiled = out
	})
	return compiled, compileErr
}

// ValidateShape checks that v, once encoded as JSON, satisfies the schema
// for shape.
func ValidateShape(shape Shape, v any) error {
	schemas, err := compileSchemas()
	if err != nil {
		return err
	}
	s, ok := schemas[shape]
	if !ok {
		return fmt.Errorf("unknown shape %q", shape)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", shape, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decoding %s: %w", shape, err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("%s shape: %w", shape, err)
	}
	return nil
}

// ValidatePage checks the typed body of p against its page schema.
func ValidatePage(p PageContent) error {
	body := p.Body()
	if body == nil {
		return fmt.Errorf("page %q has no content", p.Kind)
	}
	return ValidateShape(Shape(p.Kind), body)
}

// ValidateSnapshot checks every piece of s and returns the first violation.
func ValidateSnapshot(s *Snapshot) error {
	if err := ValidateShape(ShapeSite, s.Settings); err != nil {
		return err
	}
	for _, p := range s.Projects {
		if err := ValidateShape(ShapeProject, p); err != nil {
			return fmt.Errorf("project %s: %w", p.Slug, err)
		}
	}
	for _, kind := range PageKinds {
		page, ok := s.Pages[kind]
		if !ok {
			return fmt.Errorf("page %q missing", kind)
		}
		if err := ValidatePage(page); err != nil {
			return err
		}
	}
	return nil
}
