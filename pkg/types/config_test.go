package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty format returns ErrFormatEmpty",
			config:  Config{Format: "", DataDir: "/tmp/data"},
			wantErr: ErrFormatEmpty,
		},
		{
			name:    "unknown format returns ErrFormatUnknown",
			config:  Config{Format: "xml", DataDir: "/tmp/data"},
			wantErr: ErrFormatUnknown,
		},
		{
			name:    "negative keep returns ErrKeepInvalid",
			config:  Config{Format: FormatSQLite, Keep: -1},
			wantErr: ErrKeepInvalid,
		},
		{
			name:    "valid json config",
			config:  Config{Format: FormatJSON, DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "jsonl with empty DataDir is valid at config level",
			config:  Config{Format: FormatJSONL, DataDir: ""},
			wantErr: nil,
		},
		{
			name:    "yaml config",
			config:  Config{Format: FormatYAML},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigKeepGenerations(t *testing.T) {
	if got := (Config{}).KeepGenerations(); got != DefaultKeep {
		t.Fatalf("expected default %d, got %d", DefaultKeep, got)
	}
	if got := (Config{Keep: 2}).KeepGenerations(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
