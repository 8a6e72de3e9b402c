package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"unsafe"

	"github.com/signalnine/tetrisevolve/gosim/bridge"
)

// SimulateBatch takes a FlatBuffers BatchRequest and returns a malloc'd
// BatchResponse. The caller releases it with FreeResponse. A request that
// cannot be decoded returns nil with responseLen set to 0.
//
//export SimulateBatch
func SimulateBatch(requestPtr unsafe.Pointer, requestLen C.int, responseLen *C.int) unsafe.Pointer {
	requestBytes := C.GoBytes(requestPtr, requestLen)

	responseBytes, err := bridge.SimulateBatch(requestBytes)
	if err != nil || len(responseBytes) == 0 {
		*responseLen = 0
		return nil
	}
	*responseLen = C.int(len(responseBytes))

	// Allocate C memory for response (caller must free)
	cBytes := C.malloc(C.size_t(len(responseBytes)))
	if cBytes == nil {
		*responseLen = 0
		return nil
	}

	// Copy Go bytes to C memory
	C.memcpy(cBytes, unsafe.Pointer(&responseBytes[0]), C.size_t(len(responseBytes)))

	return cBytes
}

//export FreeResponse
func FreeResponse(ptr unsafe.Pointer) {
	C.free(ptr)
}

func main() {} // Required for CGo
