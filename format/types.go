// Package format defines the on-disk container types of results files.
package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arloliu/dosecurve/errs"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents a plain CSV file.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard frame (.zst).
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 stream (.s2).
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame (.lz4).
)

// CompressedTypes lists the compressed container types in lookup order.
var CompressedTypes = []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file name suffix of the container, including the dot.
// Plain files have no suffix.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// FromPath returns the container type implied by a file name.
// Unknown suffixes are treated as plain files.
func FromPath(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// ParseCompression parses a codec name such as "zstd", "s2", "lz4" or "none".
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, name)
	}
}
