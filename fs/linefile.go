package fs

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/blacklist"
)

// Ensure LineFile implements blacklist.URLStorage at compile time.
var _ blacklist.URLStorage = (*LineFile)(nil)

// LineFile stores URLs as UTF-8 text, one URL per line.
type LineFile struct {
	path string
}

// NewLineFile creates a LineFile at path.
func NewLineFile(path string) *LineFile {
	return &LineFile{path: path}
}

// Path returns the file path.
func (f *LineFile) Path() string {
	return f.path
}

// Load reads all non-blank lines of any length. An empty file yields no URLs.
func (f *LineFile) Load(_ context.Context) ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, blacklist.Errorf(blacklist.ESTORAGE, "open url file: %v", err)
	}
	defer file.Close()

	var urls []string
	r := bufio.NewReader(file)
	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, blacklist.Errorf(blacklist.ESTORAGE, "read url file: %v", err)
		}
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			urls = append(urls, line)
		}
		if err == io.EOF {
			break
		}
	}
	return urls, nil
}

// Save truncates the file and writes every URL followed by a newline.
func (f *LineFile) Save(_ context.Context, urls []string) error {
	file, err := os.Create(f.path)
	if err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "create url file: %v", err)
	}

	w := bufio.NewWriter(file)
	for _, u := range urls {
		w.WriteString(u)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return blacklist.Errorf(blacklist.ESTORAGE, "write url file: %v", err)
	}
	if err := file.Close(); err != nil {
		return blacklist.Errorf(blacklist.ESTORAGE, "close url file: %v", err)
	}
	return nil
}
