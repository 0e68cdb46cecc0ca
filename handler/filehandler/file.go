package filehandler

import (
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/emlog/handler"
)

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Filename is the file to write to. Required.
	Filename string
	// MaxSizeMB is the size in megabytes that triggers rotation (default: 100)
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep (0 = keep all)
	MaxBackups int
	// MaxAgeDays removes rotated files older than this many days (0 = never)
	MaxAgeDays int
	// Compress gzips rotated files
	Compress bool
}

// FileSink writes plain-text log lines to a rotating file
type FileSink struct {
	out    *lumberjack.Logger
	writer *handler.WriterSink
}

// NewFileSink creates a new file sink. The file is opened lazily on the
// first write.
func NewFileSink(cfg FileConfig) (*FileSink, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filehandler: filename is required")
	}
	if cfg.MaxSizeMB < 0 || cfg.MaxBackups < 0 || cfg.MaxAgeDays < 0 {
		return nil, errors.Errorf("filehandler: negative rotation limits for %s", cfg.Filename)
	}

	out := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return &FileSink{
		out:    out,
		writer: handler.NewWriterSink(handler.WriterConfig{Writer: out, StripColor: true}),
	}, nil
}

// Print writes p to the file
func (f *FileSink) Print(p []byte) {
	f.writer.Print(p)
}

// Stats returns a snapshot of the current statistics
func (f *FileSink) Stats() handler.Snapshot {
	return f.writer.Stats()
}

// Rotate closes the current file, renames it with a timestamp and opens a
// fresh one.
func (f *FileSink) Rotate() error {
	return errors.Wrap(f.out.Rotate(), "filehandler: rotate")
}

// Close closes the file
func (f *FileSink) Close() error {
	return errors.Wrap(f.out.Close(), "filehandler: close")
}
