// Package logs lists, prunes and parses the per-run log files
package logs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/arranger/internal/apperr"
)

// DefaultKeep is the number of log files retained by Prune.
const DefaultKeep = 20

const ext = ".log"

var (
	ErrNoLogs      = &apperr.Error{Message: "no log files found in %s"}
	errLogNotFound = &apperr.Error{Message: "log file %s does not exist"}
	errInvalidKeep = &apperr.Error{Message: "invalid number of log files to keep: %d"}
	errReadLogDir  = &apperr.Error{Message: "unable to read log directory"}
	errReadLogFile = &apperr.Error{Message: "unable to read log file %s"}
	errRemoveLog   = &apperr.Error{Message: "unable to remove log file %s"}
)

// Entry is one parsed log line.
type Entry struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// File is a log file on disk.
type File struct {
	ModTime time.Time `json:"mod_time"`
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
}

// List returns the log files in dir, newest first. A missing directory
// yields an empty list.
func List(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, errReadLogDir.Wrap(err)
	}

	files := make([]File, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}

		info, err := e.Info()
		if err != nil {
			return nil, errReadLogDir.Wrap(err)
		}

		files = append(files, File{
			Name:    e.Name(),
			Path:    filepath.Join(dir, e.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	slices.SortFunc(files, func(a, b File) int {
		if c := b.ModTime.Compare(a.ModTime); c != 0 {
			return c
		}

		if natural.Less(a.Name, b.Name) {
			return 1
		}

		if natural.Less(b.Name, a.Name) {
			return -1
		}

		return 0
	})

	return files, nil
}

// Prune deletes every log file in dir except the newest keep files and
// returns the paths it removed.
func Prune(dir string, keep int) ([]string, error) {
	if keep < 1 {
		return nil, errInvalidKeep.Fmt(keep)
	}

	files, err := List(dir)
	if err != nil {
		return nil, err
	}

	if len(files) <= keep {
		return nil, nil
	}

	var removed []string

	for _, f := range files[keep:] {
		if err := os.Remove(f.Path); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return removed, errRemoveLog.Fmt(f.Name).Wrap(err)
		}

		removed = append(removed, f.Path)
	}

	return removed, nil
}

// Latest returns the newest log file in dir.
func Latest(dir string) (File, error) {
	files, err := List(dir)
	if err != nil {
		return File{}, err
	}

	if len(files) == 0 {
		return File{}, ErrNoLogs.Fmt(dir)
	}

	return files[0], nil
}

// Find returns the log file called name in dir.
func Find(dir, name string) (File, error) {
	files, err := List(dir)
	if err != nil {
		return File{}, err
	}

	if filepath.Ext(name) == "" {
		name += ext
	}

	for _, f := range files {
		if f.Name == name {
			return f, nil
		}
	}

	return File{}, errLogNotFound.Fmt(name)
}

// Parse reads log lines from r. The first two whitespace separated fields
// are the timestamp, the third is the level and the rest is the message.
// Lines too short for that layout are kept whole as the message.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			entries = append(entries, Entry{Message: line})
			continue
		}

		entries = append(entries, Entry{
			Time:    fields[0] + " " + fields[1],
			Level:   fields[2],
			Message: strings.Join(fields[3:], " "),
		})
	}

	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("scanning log: %w", err)
	}

	return entries, nil
}

// Read parses the log file at path.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errReadLogFile.Fmt(filepath.Base(path)).Wrap(err)
	}
	defer f.Close()

	return Parse(f)
}
