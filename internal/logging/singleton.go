package logging

import (
	"sync"
)

var (
	instance *Logger
	once     sync.Once
)

// InitLogger initializes the process-wide logger. Subsequent calls are
// no-ops; the first configuration wins.
func InitLogger(config *Config) error {
	var err error
	once.Do(func() {
		instance, err = NewLogger(config)
	})
	return err
}

// GetLogger returns the singleton logger instance.
// It panics if InitLogger has not been called.
func GetLogger() *Logger {
	if instance == nil {
		panic("logger not initialized - call logging.InitLogger() first")
	}
	return instance
}
