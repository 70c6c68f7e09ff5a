package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadLines returns the trimmed non-empty lines of a text file. Lines
// starting with '#' are comments.
func ReadLines(filename string) ([]string, error) {

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return lines, nil
}

// WriteTxt writes f(element) for every element, one per line.
func WriteTxt[V, T any](filename string, data []T, f func(T) V) error {

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, element := range data {
		_, err := fmt.Fprintln(w, f(element))
		if err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
