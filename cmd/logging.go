package cmd

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logFileName = "pong.log"
	// maxLogSize truncates the log on open once it grows past this.
	maxLogSize = 1 << 20
)

// setupLogging sends the standard logger to dir/pong.log when debug is set
// and discards it otherwise. The caller closes the returned file.
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if dir == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
		dir = filepath.Join(cache, "gh-kusa-pong")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, logFileName)
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== kusa-pong started (pid %d) ===", os.Getpid())
	return f
}
