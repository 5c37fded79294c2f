package timer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/internal/osutil"
	"github.com/ayoisaiah/arranger/internal/prefs"
	"github.com/ayoisaiah/arranger/internal/timeutil"
)

// Status describes a running countdown to other processes.
type Status struct {
	EndTime time.Time   `json:"end_time"`
	Mode    models.Mode `json:"mode"`
	Task    string      `json:"task"`
}

func (t *Timer) writeStatusFile() (err error) {
	if t.statusFile == "" || t.idle() {
		return nil
	}

	s := Status{
		Mode:    t.Current.Mode,
		Task:    t.Current.Task,
		EndTime: t.now().Add(t.remaining()),
	}

	statusFile, err := os.OpenFile(
		t.statusFile,
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
		osutil.FilePermission,
	)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

func (t *Timer) removeStatusFile() {
	if t.statusFile == "" {
		return
	}

	_ = os.Remove(t.statusFile)
}

// ReadStatus parses the status file. A missing file yields nil.
func ReadStatus(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, errReadStatus.Wrap(err)
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, errReadStatus.Wrap(err)
	}

	return &s, nil
}

// ReportStatus prints the countdown of a running instance to w. Nothing is
// printed when no instance holds the preference store or the countdown has
// already ended.
func ReportStatus(w io.Writer, prefsPath, statusPath string, now time.Time) error {
	// an unlocked store means Arranger is not running
	if !prefs.Locked(prefsPath) {
		return nil
	}

	s, err := ReadStatus(statusPath)
	if err != nil || s == nil {
		return err
	}

	remaining := s.EndTime.Sub(now)
	if remaining < 0 {
		return nil
	}

	text := "[" + s.Mode.Label() + "]"
	if s.Mode == models.Work {
		text += " " + s.Task
	}

	_, err = fmt.Fprintf(
		w,
		"%s: %s\n",
		text,
		timeutil.FormatHMS(remaining.Round(time.Second)),
	)

	return err
}
