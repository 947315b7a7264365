package trace

import (
	"path/filepath"
	"testing"

	"github.com/huynhanx03/go-boundedbuffer/pkg/settings"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     settings.Logger
		wantErr bool
	}{
		{"stdout_info", settings.Logger{LogLevel: "info"}, false},
		{"stdout_debug", settings.Logger{LogLevel: "debug"}, false},
		{"bad_level", settings.Logger{LogLevel: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v; wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && log == nil {
				t.Fatal("NewLogger returned nil logger")
			}
		})
	}
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buffer.log")
	log, err := NewLogger(settings.Logger{
		LogLevel:    "info",
		FileLogName: path,
		MaxSize:     1,
		MaxBackups:  1,
		MaxAge:      1,
	})
	if err != nil {
		t.Fatal(err)
	}

	log.Info("hello")
	if err := log.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
}
