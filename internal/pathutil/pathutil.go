// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/arranger/internal/osutil"
)

const envName = "ARRANGER_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	prefsFileName  string
	statusFileName string
	logFilePrefix  string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	prefsFilePath  string
	statusFilePath string
	logDir         string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		p := defaultPaths()

		p.applyEnvironmentOverrides()

		initErr = p.computePaths(xdg.ConfigFile, xdg.DataFile)
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// InitializeIn points every path at dir.
func InitializeIn(dir string) error {
	p := defaultPaths()

	p.applyEnvironmentOverrides()

	join := func(rel string) (string, error) {
		full := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), osutil.DirPermission); err != nil {
			return "", err
		}

		return full, nil
	}

	if err := p.computePaths(join, join); err != nil {
		return err
	}

	paths = p

	return nil
}

func defaultPaths() *Paths {
	return &Paths{
		appDir:         "arranger",
		configFileName: "config.yml",
		dbFileName:     "arranger.db",
		prefsFileName:  "prefs.db",
		statusFileName: "status.json",
		logFilePrefix:  "arranger",
	}
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func PrefsFilePath() string {
	return Must().prefsFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogDir() string {
	return Must().logDir
}

// LogFilePrefix is the name every log file starts with.
func LogFilePrefix() string {
	return Must().logFilePrefix
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("arranger_%s.db", env)
		p.prefsFileName = fmt.Sprintf("prefs_%s.db", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFilePrefix = fmt.Sprintf("arranger_%s", env)
	}
}

type resolver func(relPath string) (string, error)

func (p *Paths) computePaths(configFile, dataFile resolver) error {
	var err error

	p.configFilePath, err = configFile(filepath.Join(p.appDir, p.configFileName))
	if err != nil {
		return err
	}

	p.dbFilePath, err = dataFile(filepath.Join(p.appDir, p.dbFileName))
	if err != nil {
		return err
	}

	p.prefsFilePath, err = dataFile(filepath.Join(p.appDir, p.prefsFileName))
	if err != nil {
		return err
	}

	p.statusFilePath, err = dataFile(filepath.Join(p.appDir, p.statusFileName))
	if err != nil {
		return err
	}

	// xdg only creates parent directories, so resolve a placeholder file
	// inside the log directory
	placeholder, err := dataFile(filepath.Join(p.appDir, "log", ".keep"))
	if err != nil {
		return err
	}

	p.logDir = filepath.Dir(placeholder)

	return nil
}
