package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"gochip8/pkg/cpu"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", errors.Wrapf(err, "resolve %s", relPath)
	}

	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ReadROM reads a program image from disk and checks that it fits above
// cpu.ProgramStart.
func ReadROM(path string) ([]byte, error) {
	fullPath, _, err := GetPathInfo(path)
	if err != nil {
		return nil, err
	}

	rom, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, errors.Wrap(err, "read rom")
	}

	if limit := cpu.MemorySize - cpu.ProgramStart; len(rom) > limit {
		return nil, errors.Errorf("rom %s is %d bytes, limit is %d", fullPath, len(rom), limit)
	}
	return rom, nil
}

// ReadSource reads an assembly source file.
func ReadSource(path string) (string, error) {
	fullPath, _, err := GetPathInfo(path)
	if err != nil {
		return "", err
	}

	src, err := os.ReadFile(fullPath)
	if err != nil {
		return "", errors.Wrap(err, "read source")
	}
	return string(src), nil
}

// WriteROM writes an assembled program image.
func WriteROM(path string, rom []byte) error {
	if err := os.WriteFile(path, rom, 0o644); err != nil {
		return errors.Wrapf(err, "write rom %s", path)
	}
	return nil
}
