// Command libpassgen builds the generator as a C shared or static library:
//
//	go build -buildmode=c-shared -o libpassgen.so ./cmd/libpassgen
//
// The library exports a single function:
//
//	GenerationResult generate_password(uint8_t *buffer, uintptr_t length, uint64_t random_state);
//
// buffer must point to at least length writable bytes owned by the caller.
// The library never allocates, frees or retains it.
// error_string always points to a statically allocated NUL-terminated string,
// empty on success; it must never be freed by the caller.
package main

/*
#include <stdbool.h>
#include <stdint.h>

typedef struct GenerationResult {
	bool success;
	const uint8_t *error_string;
} GenerationResult;
*/
import "C"

import (
	"unsafe"

	"github.com/maybe-hello-world/passgen-embedded/internal/binding"
)

//export generate_password
func generate_password( // nolint: revive,stylecheck
	buffer *C.uint8_t,
	length C.uintptr_t,
	random_state C.uint64_t, // nolint: revive,stylecheck
) C.GenerationResult {
	res := binding.Generate(unsafe.Pointer(buffer), uintptr(length), uint64(random_state))
	return C.GenerationResult{
		success:      C.bool(res.Success),
		error_string: diagnostic(res.Code),
	}
}

func main() {}
