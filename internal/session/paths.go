package session

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.tgd.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tgd")
}

// Dir returns the session-specific directory.
func Dir(name string) string {
	return filepath.Join(BaseDir(), "sessions", name)
}

// SocketPath returns the UDS socket path for a session.
func SocketPath(name string) string {
	return filepath.Join(Dir(name), "daemon.sock")
}

// LockPath returns the lock file path for a session.
func LockPath(name string) string {
	return filepath.Join(Dir(name), "LOCK")
}

// TDLibDir returns the TDLib database directory for a session.
func TDLibDir(name string) string {
	return filepath.Join(Dir(name), "tdlib")
}

// TDLibFilesDir returns the TDLib downloaded-files directory for a session.
func TDLibFilesDir(name string) string {
	return filepath.Join(TDLibDir(name), "files")
}

// LogDir returns the log directory for a session.
func LogDir(name string) string {
	return filepath.Join(Dir(name), "logs")
}

// LogPath returns the daemon log file path.
func LogPath(name string) string {
	return filepath.Join(LogDir(name), "tgd.log")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// EnsureDir creates the session directory tree with proper permissions.
func EnsureDir(name string) error {
	dirs := []string{
		Dir(name),
		TDLibDir(name),
		TDLibFilesDir(name),
		LogDir(name),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
