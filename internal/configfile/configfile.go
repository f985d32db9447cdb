// Package configfile loads and stores server config files as text.
package configfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// BackupSuffix is appended to a file's path for the copy kept by Write.
const BackupSuffix = ".bak"

// File is the raw content of a config file.
type File struct {
	Path string
	Text string
}

// Read loads the file at path.
func Read(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return &File{Path: path, Text: string(data)}, nil
}

// Lines splits the text into lines, dropping carriage returns from CRLF
// line endings.
func (f *File) Lines() []string {
	if f.Text == "" {
		return []string{}
	}
	lines := strings.Split(f.Text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Write replaces the file at path with text. An existing file is first
// copied to path+BackupSuffix.
func Write(fs afero.Fs, path, text string) error {
	old, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		if err := afero.WriteFile(fs, path+BackupSuffix, old, 0o644); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to read existing config file: %w", err)
	}

	if err := afero.WriteFile(fs, path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
