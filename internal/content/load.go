package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalidContent is returned when a content file fails validation.
var ErrInvalidContent = errors.New("invalid content")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(calendarStructLevel, Calendar{})
	return v
}

// calendarStructLevel requires a link whenever the calendar block is shown.
func calendarStructLevel(sl validator.StructLevel) {
	cal := sl.Current().Interface().(Calendar)
	if cal.Display && cal.Link == "" {
		sl.ReportError(cal.Link, "Link", "link", "required_with_display", "")
	}
}

// Default returns the built-in VEP content.
func Default() Content {
	c, err := Parse(defaultYAML, Content{})
	if err != nil {
		// The embedded file ships with the binary; failing here is a build defect.
		panic(fmt.Sprintf("content: embedded default is invalid: %v", err))
	}
	return c
}

// Parse decodes YAML over base and validates the result. Keys missing from
// data keep the value they have in base; lists are replaced wholesale.
func Parse(data []byte, base Content) (Content, error) {
	c := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Content{}, fmt.Errorf("decode content: %w", err)
	}
	if err := Validate(c); err != nil {
		return Content{}, err
	}
	return c, nil
}

// Load reads a YAML content file from fs and applies it over Default().
func Load(fs afero.Fs, path string) (Content, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Content{}, fmt.Errorf("read content file %s: %w", path, err)
	}
	c, err := Parse(data, Default())
	if err != nil {
		return Content{}, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Validate checks c against its struct tags. Failures wrap ErrInvalidContent
// and list every offending field.
func Validate(c Content) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(fields, ", "))
}
