// Package dataset holds the single user's input data: per-topic
// performance, company weightings, the problem bank and sample mock tests.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/prepiq/internal/mocktest"
	"github.com/abhisek/prepiq/internal/readiness"
	"github.com/abhisek/prepiq/internal/tracker"
	"github.com/abhisek/prepiq/internal/weakness"
)

// Dataset is everything the analytics run on.
type Dataset struct {
	Performance []weakness.TopicPerformance `yaml:"performance" json:"performance"`
	Companies   readiness.CompanyPatterns   `yaml:"companies" json:"companies"`
	Problems    []tracker.Problem           `yaml:"problems,omitempty" json:"problems,omitempty"`
	MockTests   []mocktest.Result           `yaml:"mockTests,omitempty" json:"mockTests,omitempty"`
}

// ValidationError reports a dataset file that does not satisfy the
// schema or the cross-field rules.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid dataset %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// schemaDefinition describes a dataset file. JSON files are read through
// the YAML decoder and validated the same way.
var schemaDefinition = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"performance": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []any{"topic", "attempts", "solved", "avgTime"},
				"properties": map[string]any{
					"topic":    map[string]any{"type": "string", "minLength": 1},
					"attempts": map[string]any{"type": "integer", "minimum": 1},
					"solved":   map[string]any{"type": "integer", "minimum": 0},
					"avgTime":  map[string]any{"type": "number", "minimum": 0},
				},
			},
		},
		"companies": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":    "number",
					"minimum": 0,
					"maximum": 1,
				},
			},
		},
		"problems": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []any{"id", "title", "topic", "difficulty"},
				"properties": map[string]any{
					"id":           nonEmptyString,
					"title":        nonEmptyString,
					"topic":        nonEmptyString,
					"difficulty":   nonEmptyString,
					"timeTaken":    map[string]any{"type": "integer", "minimum": 0},
					"attemptCount": map[string]any{"type": "integer", "minimum": 0},
					"confidence":   map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
					"solved":       map[string]any{"type": "boolean"},
					"solvedAt":     map[string]any{"type": "string"},
				},
			},
		},
		"mockTests": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []any{"id", "type", "category", "score", "date"},
				"properties": map[string]any{
					"id":             nonEmptyString,
					"type":           map[string]any{"enum": []any{"pattern", "company"}},
					"category":       nonEmptyString,
					"score":          map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
					"totalQuestions": map[string]any{"type": "integer", "minimum": 0},
					"timeTaken":      map[string]any{"type": "integer", "minimum": 0},
					"date":           map[string]any{"type": "string"},
					"strengths":      stringList,
					"weaknesses":     stringList,
				},
			},
		},
	},
}

var (
	nonEmptyString = map[string]any{"type": "string", "minLength": 1}
	stringList     = map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
)

const schemaURL = "schema://prepiq-dataset.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func datasetSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain decoded JSON values.
		raw, err := json.Marshal(schemaDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Load reads a YAML or JSON dataset file. Sections the file leaves out
// fall back to Default. Problems are stored in canonical form. Invalid content is reported as *ValidationError.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes and validates dataset content. name is used in errors.
func Parse(name string, data []byte) (*Dataset, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ValidationError{Path: name, Err: fmt.Errorf("decode: %w", err)}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	if err := validateSchema(doc); err != nil {
		return nil, &ValidationError{Path: name, Err: err}
	}

	var file Dataset
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &ValidationError{Path: name, Err: fmt.Errorf("decode: %w", err)}
	}
	problems, perr := normalizeProblems(file.Problems)
	if err := errors.Join(checkPerformance(file.Performance), perr, checkMockTests(file.MockTests)); err != nil {
		return nil, &ValidationError{Path: name, Err: err}
	}

	ds := Default()
	if len(file.Performance) > 0 {
		ds.Performance = file.Performance
	}
	if len(file.Companies) > 0 {
		ds.Companies = file.Companies
	}
	if len(problems) > 0 {
		ds.Problems = problems
	}
	if len(file.MockTests) > 0 {
		ds.MockTests = file.MockTests
	}
	return ds, nil
}

func validateSchema(doc any) error {
	schema, err := datasetSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	// Round-trip through JSON so YAML scalars become JSON numbers and strings.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func checkPerformance(rows []weakness.TopicPerformance) error {
	var errs []error
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if r.Solved > r.Attempts {
			errs = append(errs, fmt.Errorf("topic %q: solved (%d) exceeds attempts (%d)", r.Topic, r.Solved, r.Attempts))
		}
		if seen[r.Topic] {
			errs = append(errs, fmt.Errorf("topic %q listed twice", r.Topic))
		}
		seen[r.Topic] = true
	}
	return errors.Join(errs...)
}

// normalizeProblems validates each problem and returns the canonical
// forms. Ids must be unique.
func normalizeProblems(rows []tracker.Problem) ([]tracker.Problem, error) {
	var errs []error
	out := make([]tracker.Problem, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, p := range rows {
		n, err := p.Normalize()
		if err != nil {
			errs = append(errs, fmt.Errorf("problem %q: %w", p.ID, err))
			continue
		}
		if seen[n.ID] {
			errs = append(errs, fmt.Errorf("problem %q listed twice", n.ID))
		}
		seen[n.ID] = true
		out = append(out, n)
	}
	return out, errors.Join(errs...)
}

func checkMockTests(rows []mocktest.Result) error {
	var errs []error
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if _, err := time.Parse(tracker.DateLayout, r.Date); err != nil {
			errs = append(errs, fmt.Errorf("mock test %q: date must be YYYY-MM-DD, got %q", r.ID, r.Date))
		}
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("mock test %q listed twice", r.ID))
		}
		seen[r.ID] = true
	}
	return errors.Join(errs...)
}
