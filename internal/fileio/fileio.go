// Package fileio is the file I/O collaborator named in the editor engine's
// design: line-oriented load and exact-length truncating save of a single
// file.
// It has no hard engineering of its own; it exists so the engine never
// imports os directly for persistence.
package fileio

import (
	"bufio"
	"fmt"
	"os"
)

// Load reads filename line by line, stripping trailing \r and \n from
// each line before returning it. No other normalization is performed.
func Load(filename string) ([][]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		lines = append(lines, cp)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return lines, nil
}

// Save concatenates rows in order, each followed by '\n', and writes the
// result to filename, truncating the file to the exact byte length. The
// file is created with mode 0644 if it does not already exist. It returns
// the number of bytes written.
func Save(filename string, rows [][]byte) (int, error) {
	length := 0
	for _, row := range rows {
		length += len(row) + 1
	}

	buf := make([]byte, length)
	p := 0
	for _, row := range rows {
		p += copy(buf[p:], row)
		buf[p] = '\n'
		p++
	}

	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := f.Truncate(int64(length)); err != nil {
		return 0, err
	}

	n, err := f.Write(buf)
	if err != nil {
		return n, err
	}
	if n != length {
		return n, fmt.Errorf("partial write: %d/%d bytes", n, length)
	}
	return n, nil
}
