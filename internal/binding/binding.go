// Package binding adapts the generator to the raw pointer/length calling convention
// exposed over the C ABI.
//
// Every diagnostic is a constant; callers across the ABI must never release it.
package binding

import (
	"errors"
	"math"
	"unsafe"

	"github.com/maybe-hello-world/passgen-embedded/pkg/passgen"
)

type Kind int

const (
	KindNone Kind = iota
	KindInvalidArgument
	KindInternalFailure
)

type Code int

const (
	OK Code = iota
	NullBuffer
	LengthOverflow
	EmptyCharset
	Internal
)

const fallbackMessage = "internal failure"

var messages = [...]string{ // nolint: gochecknoglobals
	OK:             "",
	NullBuffer:     "invalid argument: buffer is null",
	LengthOverflow: "invalid argument: length exceeds addressable memory",
	EmptyCharset:   "invalid argument: character set is empty",
	Internal:       fallbackMessage,
}

// Message returns the diagnostic of the code.
// Unknown codes resolve to the internal failure message
func (c Code) Message() string {
	if c < 0 || int(c) >= len(messages) {
		return fallbackMessage
	}
	return messages[c]
}

func (c Code) Kind() Kind {
	switch c {
	case OK:
		return KindNone
	case NullBuffer, LengthOverflow, EmptyCharset:
		return KindInvalidArgument
	default:
		return KindInternalFailure
	}
}

type Result struct {
	Success bool
	Code    Code
}

func failure(code Code) Result {
	return Result{Code: code}
}

// Generate fills length bytes starting at buffer with a password derived from seed,
// using the default charset.
// A zero length always succeeds without touching the buffer
func Generate(buffer unsafe.Pointer, length uintptr, seed uint64) Result {
	return GenerateWith(passgen.New(passgen.Default), buffer, length, seed)
}

// GenerateWith is Generate with an explicit generator
func GenerateWith(gen passgen.Generator, buffer unsafe.Pointer, length uintptr, seed uint64) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure(Internal)
		}
	}()
	if gen.Charset().Len() == 0 {
		return failure(EmptyCharset)
	}
	if length == 0 {
		return Result{Success: true}
	}
	if buffer == nil {
		return failure(NullBuffer)
	}
	if length > math.MaxInt {
		return failure(LengthOverflow)
	}
	dst := unsafe.Slice((*byte)(buffer), int(length))
	if err := gen.Fill(dst, seed); err != nil {
		if errors.Is(err, passgen.ErrEmptyCharset) {
			return failure(EmptyCharset)
		}
		return failure(Internal)
	}
	return Result{Success: true}
}
