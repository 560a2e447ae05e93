package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the lesson format major version this build reads.
const SupportedMajor = "v1"

//go:embed lesson.yaml
var embeddedLesson []byte

//go:embed schema.json
var schemaJSON []byte

// ErrUnsupportedVersion is returned for lesson files of another major version.
var ErrUnsupportedVersion = errors.New("unsupported lesson version")

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Default returns the lesson shipped with the binary.
func Default() (*Lesson, error) {
	return Parse(embeddedLesson)
}

// LoadFile reads and validates a lesson from disk.
func LoadFile(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson: %w", err)
	}
	return Parse(data)
}

// Load returns the lesson at path, or the embedded lesson when path is empty.
func Load(path string) (*Lesson, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes a YAML lesson, checks it against the lesson schema and
// runs the structural checks.
func Parse(data []byte) (*Lesson, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode lesson: %w", err)
	}

	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var l Lesson
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode lesson: %w", err)
	}

	if !semver.IsValid(l.Version) || semver.Major(l.Version) != SupportedMajor {
		return nil, fmt.Errorf("%w: %q (want %s.x.y)", ErrUnsupportedVersion, l.Version, SupportedMajor)
	}

	if err := validateLesson(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// validateSchema validates a decoded YAML document against schema.json.
func validateSchema(raw any) error {
	sch, err := lessonSchema()
	if err != nil {
		return fmt.Errorf("compile lesson schema: %w", err)
	}

	// The validator wants JSON-shaped values, so round-trip through
	// encoding/json to normalize YAML ints and maps.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("normalize lesson: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("normalize lesson: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("lesson schema validation failed: %w", err)
	}
	return nil
}

func lessonSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal(schemaJSON, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://lesson.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}
