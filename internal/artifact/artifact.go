// Package artifact validates precompiled contract binaries before they are
// uploaded. The scripts this replaces would happily ship a missing or
// truncated file to the network and let the deploy fail remotely.
package artifact

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

// wasmMagic is the header every valid artifact starts with: "\0asm"
// followed by version 1.
var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

// Info describes a validated artifact.
type Info struct {
	Path string
	Size int64
}

// Validate checks that path names a plausible contract artifact: a regular,
// non-empty file carrying the wasm magic header.
func Validate(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, errors.Wrapf(err, "artifact %s", path)
	}
	if fi.IsDir() {
		return Info{}, errors.Errorf("artifact %s is a directory", path)
	}
	if fi.Size() == 0 {
		return Info{}, errors.Errorf("artifact %s is empty", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Info{}, errors.Wrapf(err, "artifact %s", path)
	}
	defer f.Close()

	header := make([]byte, len(wasmMagic))
	if _, err := f.Read(header); err != nil {
		return Info{}, errors.Wrapf(err, "reading artifact header from %s", path)
	}
	if !bytes.Equal(header, wasmMagic) {
		return Info{}, errors.Errorf("artifact %s is not a wasm binary (bad magic header)", path)
	}

	return Info{Path: path, Size: fi.Size()}, nil
}
