package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadError represents an error that occurred while loading a block
// stream from disk.
type LoadError struct {
	Code    string
	Message string
	Line    int // 1-based line number if the error is positional
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadBlocks reads a block stream from a file: one decimal value per
// line, surrounding whitespace ignored, blank lines skipped. Loading is
// strict: the first malformed line aborts with a positional LoadError.
func LoadBlocks(path string) ([]uint64, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("blocks file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing blocks file: %v", err)}
	}
	if info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a file: %s", path)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error opening blocks file: %v", err)}
	}
	defer f.Close()

	var blocks []uint64

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		value, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, &LoadError{
				Code:    ErrCodeParse,
				Message: fmt.Sprintf("invalid block value %q", text),
				Line:    line,
			}
		}
		blocks = append(blocks, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("error reading blocks file: %v", err)}
	}

	if len(blocks) == 0 {
		return nil, &LoadError{Code: ErrCodeNoBlocks, Message: fmt.Sprintf("no block values found in %s", path)}
	}

	return blocks, nil
}
