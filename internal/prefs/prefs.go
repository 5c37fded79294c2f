// Package prefs persists per-user preferences in a small key-value store.
// Holding the store open also marks Arranger as running, since bbolt allows
// only one process to hold the file lock.
package prefs

import (
	"errors"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/arranger/internal/apperr"
	"github.com/ayoisaiah/arranger/internal/config"
	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/internal/osutil"
)

const bucketName = "preferences"

const (
	KeyDuration = "timer.duration"
	KeyMode     = "window.mode"
	KeyCompact  = "window.compact"
)

var (
	ErrRunning = &apperr.Error{
		Message: "is Arranger already running? Only one instance can be active at a time",
	}

	errNotFound = errors.New("preference not set")
)

// Store is a bbolt backed preference store.
type Store struct {
	db *bolt.DB
}

// Open creates or opens the preference store and locks it.
func Open(path string) (*Store, error) {
	return open(path, 1*time.Second)
}

func open(path string, timeout time.Duration) (*Store, error) {
	db, err := bolt.Open(path, osutil.PrivatePermission, &bolt.Options{Timeout: timeout})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrRunning
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Locked reports whether another process currently holds the store at path.
func Locked(path string) bool {
	s, err := open(path, 100*time.Millisecond)
	if err != nil {
		return errors.Is(err, ErrRunning)
	}

	_ = s.Close()

	return false
}

// Close releases the store and its lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw value stored under key.
func (s *Store) Get(key string) (string, error) {
	var value string

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return errNotFound
		}

		value = string(v)

		return nil
	})

	return value, err
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte(value))
	})
}

// Duration returns the saved countdown duration, or fallback when none has
// been saved or the saved value is out of range. Values are stored as whole
// seconds.
func (s *Store) Duration(fallback time.Duration) time.Duration {
	v, err := s.Get(KeyDuration)
	if err != nil {
		return fallback
	}

	secs, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	d := time.Duration(secs) * time.Second
	if !config.ValidDuration(d) {
		return fallback
	}

	return d
}

// SetDuration saves the countdown duration.
func (s *Store) SetDuration(d time.Duration) error {
	return s.Set(KeyDuration, strconv.Itoa(int(d/time.Second)))
}

// Mode returns the saved window mode, defaulting to work.
func (s *Store) Mode() models.Mode {
	v, err := s.Get(KeyMode)
	if err != nil {
		return models.Work
	}

	return models.ParseMode(v)
}

// SetMode saves the window mode.
func (s *Store) SetMode(m models.Mode) error {
	return s.Set(KeyMode, string(m))
}

// Compact reports whether the overlay view was active when last closed.
func (s *Store) Compact() bool {
	v, err := s.Get(KeyCompact)
	if err != nil {
		return false
	}

	b, _ := strconv.ParseBool(v)

	return b
}

// SetCompact saves the overlay state.
func (s *Store) SetCompact(compact bool) error {
	return s.Set(KeyCompact, strconv.FormatBool(compact))
}
