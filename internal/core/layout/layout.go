package layout

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

const (
	// DateTimeFormat is the textual form of a layout's date and time.
	DateTimeFormat = "2006-01-02 15:04"
	// DefaultDateFormat is how the date field shows and reads a day.
	DefaultDateFormat = "02/01/2006"
)

var (
	ErrBaseDirMissing = errors.New("base directory does not exist")
	ErrBaseDirNotDir  = errors.New("base path is not a directory")
	ErrCodeBlank      = errors.New("project code has a blank part")
	ErrDateTime       = errors.New("date or time is invalid")
)

// Code is a structured project code such as ABC-1234-X.
type Code struct {
	Prefix string
	Body   string
	Suffix string
}

// HasBlank reports whether any part is blank after trimming.
func (code Code) HasBlank() bool {
	for _, part := range []string{code.Prefix, code.Body, code.Suffix} {
		if strings.TrimSpace(part) == "" {
			return true
		}
	}
	return false
}

func (code Code) String() string {
	return strings.Join([]string{
		strings.TrimSpace(code.Prefix),
		strings.TrimSpace(code.Body),
		strings.TrimSpace(code.Suffix),
	}, "-")
}

// Validator is the final validation of a date and time input.
type Validator interface {
	Validate() bool
}

// Form is the user input collected for a new project layout.
// DateFormat is the time layout the date field uses; blank means
// DefaultDateFormat.
type Form struct {
	BaseDir      string
	TemplatePath string
	Code         Code
	DateFormat   string
}

// ValidDateFormat reports whether format is a time layout that keeps the
// year, month and day of a formatted date when parsed back.
func ValidDateFormat(format string) bool {
	if strings.TrimSpace(format) == "" {
		return false
	}
	reference := time.Date(2031, time.November, 23, 0, 0, 0, 0, time.UTC)
	parsed, err := time.Parse(format, reference.Format(format))
	if err != nil {
		return false
	}
	return parsed.Year() == reference.Year() && parsed.Month() == reference.Month() && parsed.Day() == reference.Day()
}

// Request is a validated form together with its resolved date and time.
type Request struct {
	Form
	When time.Time
}

func (request Request) String() string {
	return fmt.Sprintf("layout %s at %s in %s (template %s)",
		request.Code, request.When.Format(DateTimeFormat), request.BaseDir, request.TemplatePath)
}

// Validate checks the form on submit. Checks run in order and stop at the
// first failure: base directory, project code, then the date and time.
func Validate(form Form, when Validator) bool {
	if checkBaseDir(form.BaseDir) != nil {
		return false
	}
	if form.Code.HasBlank() {
		return false
	}
	return when.Validate()
}

// Problems runs every check and reports all failures, or nil.
func Problems(form Form, when Validator) error {
	var result *multierror.Error
	if err := checkBaseDir(form.BaseDir); err != nil {
		result = multierror.Append(result, err)
	}
	if form.Code.HasBlank() {
		result = multierror.Append(result, ErrCodeBlank)
	}
	if !when.Validate() {
		result = multierror.Append(result, ErrDateTime)
	}
	return result.ErrorOrNil()
}

func checkBaseDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrBaseDirMissing
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrBaseDirMissing, path)
		}
		return fmt.Errorf("stat base directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrBaseDirNotDir, path)
	}
	return nil
}
