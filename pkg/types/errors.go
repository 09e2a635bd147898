// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure. Every kind is fatal; the CLI maps
// all of them to exit code 1.
type Kind string

const (
	// DependencyMissing means the rasterization capability is absent.
	DependencyMissing Kind = "DependencyMissing"

	// ToolchainNotFound means the external conversion binary could not be
	// located at the supplied toolchain path or on the system PATH.
	ToolchainNotFound Kind = "ToolchainNotFound"

	// SourceUnreadable means the input PDF is missing or unreadable.
	SourceUnreadable Kind = "SourceUnreadable"

	// DestinationUnwritable means the output directory is missing,
	// uncreatable, or unwritable.
	DestinationUnwritable Kind = "DestinationUnwritable"

	// UnsupportedFormat means the requested output format is rejected.
	UnsupportedFormat Kind = "UnsupportedFormat"

	// ConversionFailure covers any unexpected rasterization or encoding
	// error without a dedicated kind.
	ConversionFailure Kind = "ConversionFailure"
)

// Error is a classified conversion error. Err holds the underlying cause
// when one exists.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewDependencyMissing builds a DependencyMissing error.
func NewDependencyMissing(message string, err error) *Error {
	return &Error{Kind: DependencyMissing, Message: message, Err: err}
}

// NewToolchainNotFound builds a ToolchainNotFound error.
func NewToolchainNotFound(message string, err error) *Error {
	return &Error{Kind: ToolchainNotFound, Message: message, Err: err}
}

// NewSourceUnreadable builds a SourceUnreadable error.
func NewSourceUnreadable(message string, err error) *Error {
	return &Error{Kind: SourceUnreadable, Message: message, Err: err}
}

// NewDestinationUnwritable builds a DestinationUnwritable error.
func NewDestinationUnwritable(message string, err error) *Error {
	return &Error{Kind: DestinationUnwritable, Message: message, Err: err}
}

// NewUnsupportedFormat builds an UnsupportedFormat error.
func NewUnsupportedFormat(message string, err error) *Error {
	return &Error{Kind: UnsupportedFormat, Message: message, Err: err}
}

// NewConversionFailure builds a ConversionFailure error.
func NewConversionFailure(message string, err error) *Error {
	return &Error{Kind: ConversionFailure, Message: message, Err: err}
}

// KindOf returns the Kind carried by err. Errors without a classification
// report ConversionFailure.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return ConversionFailure
}
