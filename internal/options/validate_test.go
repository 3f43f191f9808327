package options

import (
	"errors"
	"testing"

	"github.com/erraggy/keycase/keyerrors"
)

func TestRequireOne(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		sources []bool
		wantErr string
	}{
		{
			name:    "exactly one",
			names:   []string{"file", "content"},
			sources: []bool{false, true},
		},
		{
			name:    "none",
			names:   []string{"file", "content"},
			sources: []bool{false, false},
			wantErr: "configuration error for document: exactly one of file or content must be provided",
		},
		{
			name:    "several",
			names:   []string{"file", "url", "content"},
			sources: []bool{true, false, true},
			wantErr: "configuration error for document: exactly one of file, url, or content must be provided (got 2)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOne("document", tt.names, tt.sources...)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("got %q, want %q", err.Error(), tt.wantErr)
			}
			if !errors.Is(err, keyerrors.ErrConfig) {
				t.Error("expected error to match keyerrors.ErrConfig")
			}
		})
	}
}
