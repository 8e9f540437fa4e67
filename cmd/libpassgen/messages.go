package main

/*
#include <stdint.h>

static const uint8_t passgen_msg_ok[] = "";
static const uint8_t passgen_msg_null_buffer[] = "invalid argument: buffer is null";
static const uint8_t passgen_msg_length_overflow[] = "invalid argument: length exceeds addressable memory";
static const uint8_t passgen_msg_empty_charset[] = "invalid argument: character set is empty";
static const uint8_t passgen_msg_internal[] = "internal failure";

static const uint8_t *passgen_message(int code) {
	switch (code) {
	case 0:
		return passgen_msg_ok;
	case 1:
		return passgen_msg_null_buffer;
	case 2:
		return passgen_msg_length_overflow;
	case 3:
		return passgen_msg_empty_charset;
	default:
		return passgen_msg_internal;
	}
}
*/
import "C"

import (
	"unsafe"

	"github.com/maybe-hello-world/passgen-embedded/internal/binding"
)

// diagnostic returns the static C string matching the code.
// Codes are numbered the same way as in the binding package
func diagnostic(code binding.Code) *C.uint8_t {
	return C.passgen_message(C.int(code))
}

// diagnosticText reads back the C string returned for the code.
// Only used by tests, which cannot call into C directly
func diagnosticText(code binding.Code) string {
	return C.GoString((*C.char)(unsafe.Pointer(diagnostic(code))))
}
