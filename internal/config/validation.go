package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// ValidateConfig validates the complete configuration structure.
func ValidateConfig(cfg *Config) error {
	return newConfigurationValidator(cfg).validate()
}

// configurationValidator coordinates validation across configuration domains.
type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	if err := cv.validatePaths(); err != nil {
		return err
	}
	if err := cv.validateClassification(); err != nil {
		return err
	}
	if err := cv.validateSidebar(); err != nil {
		return err
	}
	if err := cv.validateLogging(); err != nil {
		return err
	}
	if _, err := cv.config.Watch.DebounceDuration(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid watch configuration").Fatal().Build()
	}
	return nil
}

// validatePaths rejects an output directory that is the source itself or contains it:
// the output is wiped before every build.
func (cv *configurationValidator) validatePaths() error {
	src := filepath.Clean(cv.config.Source)
	out := filepath.Clean(cv.config.Output)
	rel, err := filepath.Rel(out, src)
	if err == nil && (rel == "." || !strings.HasPrefix(rel, "..")) {
		return ferrors.ValidationError("output directory must not contain the source directory").
			WithContext("source", src).
			WithContext("output", out).
			Build()
	}
	return nil
}

// validateClassification rejects configured rules that cannot be matched, so a
// misconfigured table fails at startup instead of silently producing untagged fences.
func (cv *configurationValidator) validateClassification() error {
	seen := make(map[string]struct{}, len(cv.config.Classification))
	for i, rule := range cv.config.Classification {
		ext := rule.Extension
		switch {
		case ext == "":
			return classificationError(i, ext, "extension cannot be empty")
		case strings.ContainsAny(ext, "./\\ \t"):
			return classificationError(i, ext, "extension must not contain dots, separators or whitespace")
		case ext != strings.ToLower(ext):
			return classificationError(i, ext, "extension must be lowercase")
		case strings.ContainsAny(rule.Tag, " \t\n`"):
			return classificationError(i, ext, "language tag must not contain whitespace or backticks")
		}
		if _, dup := seen[ext]; dup {
			return classificationError(i, ext, "duplicate extension")
		}
		seen[ext] = struct{}{}
	}
	return nil
}

func classificationError(index int, ext, msg string) error {
	return ferrors.ValidationError("invalid classification rule: "+msg).
		WithContext("index", index).
		WithContext("extension", ext).
		Build()
}

func (cv *configurationValidator) validateSidebar() error {
	idx := cv.config.Sidebar.Index
	if idx == "" || strings.ContainsAny(idx, `/\`) {
		return ferrors.ValidationError(fmt.Sprintf("sidebar.index must be a plain file name, got %q", idx)).Build()
	}
	return nil
}

func (cv *configurationValidator) validateLogging() error {
	if _, err := logLevelNormalizer.NormalizeWithError(cv.config.Logging.Level); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid logging.level").Fatal().Build()
	}
	if _, err := logFormatNormalizer.NormalizeWithError(cv.config.Logging.Format); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid logging.format").Fatal().Build()
	}
	return nil
}
