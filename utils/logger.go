package utils

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// LogLevel represents different log levels
type LogLevel string

const (
	INFO  LogLevel = "INFO"
	WARN  LogLevel = "WARN"
	ERROR LogLevel = "ERROR"
)

// LogEntry is one structured log line, emitted as JSON.
type LogEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Level     LogLevel    `json:"level"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// Logger provides structured logging on stdout.
type Logger struct {
	logger *log.Logger
}

// NewLogger creates a new structured logger
func NewLogger() *Logger {
	return &Logger{logger: log.New(os.Stdout, "", 0)}
}

// Info logs an info message
func (l *Logger) Info(message string, data ...interface{}) {
	l.emit(LogEntry{Level: INFO, Message: message, Data: first(data)})
}

// Warn logs a warning message
func (l *Logger) Warn(message string, data ...interface{}) {
	l.emit(LogEntry{Level: WARN, Message: message, Data: first(data)})
}

// Error logs an error message with its cause
func (l *Logger) Error(message string, err error, data ...interface{}) {
	entry := LogEntry{Level: ERROR, Message: message, Data: first(data)}
	if err != nil {
		entry.Error = err.Error()
	}
	l.emit(entry)
}

func (l *Logger) emit(entry LogEntry) {
	entry.Timestamp = time.Now()
	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		log.Printf("Error marshaling log entry: %v", err)
		return
	}
	l.logger.Println(string(jsonBytes))
}

func first(data []interface{}) interface{} {
	if len(data) > 0 {
		return data[0]
	}
	return nil
}

// Global logger instance
var GlobalLogger = NewLogger()

// Convenience functions for the global logger
func LogInfo(message string, data ...interface{}) {
	GlobalLogger.Info(message, data...)
}

func LogWarn(message string, data ...interface{}) {
	GlobalLogger.Warn(message, data...)
}

func LogError(message string, err error, data ...interface{}) {
	GlobalLogger.Error(message, err, data...)
}
