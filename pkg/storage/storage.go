package storage

import (
	"fmt"
	"io"
	"os"
)

// Storage handles file IO for the CLI commands: page inputs, result
// documents, and catalog dumps. The path "-" means stdin or stdout.
type Storage struct{}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	err := os.WriteFile(filePath, content, 0644)
	if err != nil {
		return fmt.Errorf("error saving file: %s", err)
	}

	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %s", err)
	}
	return data, nil
}

// ReadInput reads a file, or stdin when path is "-".
func (s *Storage) ReadInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %s", err)
		}
		return data, nil
	}
	return s.ReadFile(path)
}

// WriteOutput writes to a file, or stdout when path is "-" or empty.
func (s *Storage) WriteOutput(path string, content []byte) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(content); err != nil {
			return fmt.Errorf("error writing stdout: %s", err)
		}
		return nil
	}
	return s.SaveFile(path, content)
}

func (s *Storage) HasFile(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil || !os.IsNotExist(err)
}
