// Package gen compiles a quantity catalog into generated Go source.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidCatalog indicates a catalog record shape error.
	ErrInvalidCatalog = errors.New("quanta: invalid catalog")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("quanta: missing configuration")
	// ErrInvalidRelation indicates a dimension relation error.
	ErrInvalidRelation = errors.New("quanta: invalid relation")
	// ErrInvalidConversion indicates a unit conversion literal error.
	ErrInvalidConversion = errors.New("quanta: invalid conversion")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("quanta: code generation failed")
)

// ShapeError reports a catalog record that cannot produce a quantity type:
// a kind without exactly one named storage field, a missing or duplicated
// canonical unit, or identifiers the target language rejects.
type ShapeError struct {
	Kind    string // catalog kind name
	Field   string // storage field or unit symbol (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	var b strings.Builder
	b.WriteString("quanta: shape error")
	if e.Kind != "" {
		b.WriteString(" on kind ")
		b.WriteString(e.Kind)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ShapeError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

// NewShapeError creates a new ShapeError.
func NewShapeError(kind, field, message string, cause error) *ShapeError {
	return &ShapeError{
		Kind:    kind,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("quanta: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("quanta: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// RelationError reports an inconsistency in the dimension relation graph:
// an unknown kind name, a scalar operand outside a reciprocal declaration,
// or two relations that would emit the same operator with different result
// kinds.
type RelationError struct {
	Relation string // declaration form, e.g. "mass x velocity = momentum"
	Clashes  string // the previously accepted declaration, when contradicting
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *RelationError) Error() string {
	var b strings.Builder
	b.WriteString("quanta: relation error")
	if e.Relation != "" {
		b.WriteString(" on ")
		b.WriteString(e.Relation)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Clashes != "" {
		b.WriteString(" (conflicts with ")
		b.WriteString(e.Clashes)
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *RelationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for RelationError.
func (e *RelationError) Is(target error) bool {
	return target == ErrInvalidRelation
}

// NewRelationError creates a new RelationError.
func NewRelationError(relation, clashes, message string) *RelationError {
	return &RelationError{
		Relation: relation,
		Clashes:  clashes,
		Message:  message,
	}
}

// ConversionError reports an unusable unit conversion literal: a scale or
// offset that is NaN, infinite, or a zero scale that no division could
// invert.
type ConversionError struct {
	Kind    string
	Unit    string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	var b strings.Builder
	b.WriteString("quanta: conversion error")
	if e.Kind != "" {
		b.WriteString(" on kind ")
		b.WriteString(e.Kind)
	}
	if e.Unit != "" {
		b.WriteString(" unit ")
		b.WriteString(e.Unit)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " (value: %v)", e.Value)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ConversionError.
func (e *ConversionError) Is(target error) bool {
	return target == ErrInvalidConversion
}

// NewConversionError creates a new ConversionError.
func NewConversionError(kind, unit string, value any, message string) *ConversionError {
	return &ConversionError{
		Kind:    kind,
		Unit:    unit,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "kind", "feature", "support", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("quanta: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsShapeError reports whether the error is a ShapeError.
func IsShapeError(err error) bool {
	var shapeErr *ShapeError
	return errors.As(err, &shapeErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsRelationError reports whether the error is a RelationError.
func IsRelationError(err error) bool {
	var relErr *RelationError
	return errors.As(err, &relErr)
}

// IsConversionError reports whether the error is a ConversionError.
func IsConversionError(err error) bool {
	var convErr *ConversionError
	return errors.As(err, &convErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
