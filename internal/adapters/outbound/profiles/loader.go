package profiles

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"

	"github.com/kridha-admin/stydev/internal/domain"
)

// Loader turns YAML or JSON request documents into validated, normalized
// score requests. It is the only place raw enum strings are accepted.
type Loader struct {
	validate *validator.Validate
	logger   *slog.Logger
}

func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Loader{validate: v, logger: logger}
}

// document is the on-disk request layout. Garment extras carry listing
// data the engine derives fields from.
type document struct {
	Body    domain.BodyProfile `json:"body" yaml:"body"`
	Garment garmentDocument    `json:"garment" yaml:"garment"`
	Context map[string]any     `json:"context" yaml:"context"`
}

type garmentDocument struct {
	domain.GarmentProfile `yaml:",inline"`

	Brand         string `json:"brand" yaml:"brand"`
	Price         string `json:"price" yaml:"price"`
	ModelSizeWorn string `json:"model_size_worn" yaml:"model_size_worn"`
}

// LoadFile reads a YAML or JSON request file.
func (l *Loader) LoadFile(path string) (domain.ScoreRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ScoreRequest{}, fmt.Errorf("reading request: %w", err)
	}
	req, err := l.Decode(data)
	if err != nil {
		return domain.ScoreRequest{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return req, nil
}

// Decode parses one request document over the default profiles, then
// normalizes and validates it.
func (l *Loader) Decode(data []byte) (domain.ScoreRequest, error) {
	// 1. Decode over defaults; brand tier stays empty so inference can tell
	// an explicit tier from a missing one
	doc := document{
		Body:    domain.DefaultBodyProfile(),
		Garment: garmentDocument{GarmentProfile: domain.DefaultGarmentProfile()},
	}
	doc.Garment.BrandTier = ""

	if err := decode(data, &doc); err != nil {
		return domain.ScoreRequest{}, fmt.Errorf("parsing request: %w", err)
	}

	// 2. Derived garment fields
	if doc.Garment.BrandTier == "" {
		doc.Garment.BrandTier = InferBrandTier(doc.Garment.Brand, doc.Garment.Price)
	}
	if doc.Garment.ModelSizeWorn != "" {
		doc.Garment.ModelEstimatedSize = ModelSize(doc.Garment.ModelSizeWorn)
	}

	req := domain.ScoreRequest{
		Garment: doc.Garment.GarmentProfile,
		Body:    doc.Body,
		Context: doc.Context,
	}

	// 3. Enums, then ranges
	l.Normalize(&req)
	if err := l.Validate(req); err != nil {
		return domain.ScoreRequest{}, err
	}
	return req, nil
}

// decode reads JSON when the document opens with a brace and YAML
// otherwise. Unknown keys are rejected in both.
func decode(data []byte, doc *document) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		return dec.Decode(doc)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks numeric ranges on both profiles.
func (l *Loader) Validate(req domain.ScoreRequest) error {
	var problems []string
	for section, v := range map[string]any{"body": &req.Body, "garment": &req.Garment} {
		err := l.validate.Struct(v)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating %s: %w", section, err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s.%s: %s (got %v)", section, fe.Field(), describe(fe), fe.Value()))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	slices.Sort(problems)
	return &ValidationError{Problems: problems}
}

// ValidationError lists every out-of-range field of a request.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Problems, "; ")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "gte":
		return "must be >= " + fe.Param()
	case "max", "lte":
		return "must be <= " + fe.Param()
	case "gt":
		return "must be > " + fe.Param()
	}
	return "failed " + fe.Tag()
}
