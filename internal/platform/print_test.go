package platform

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func installed(names ...string) func(string) bool {
	return func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}
}

func TestPrintCommand(t *testing.T) {
	const image = "/res/72names.jpg"
	const job = "names72-job"

	tests := []struct {
		name     string
		goos     string
		lookPath func(string) bool
		wantCmd  string
		wantArgs []string
	}{
		{"linux lp", OSLinux, installed(LPCommand, LPRCommand), LPCommand, []string{"-t", job, image}},
		{"darwin lp", OSDarwin, installed(LPCommand), LPCommand, []string{"-t", job, image}},
		{"linux lpr fallback", OSLinux, installed(LPRCommand), LPRCommand, []string{"-J", job, image}},
		{"windows", OSWindows, installed(), PowerShellCommand, []string{"-NoProfile", "-Command", "Start-Process -FilePath '/res/72names.jpg' -Verb Print"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := PrintCommand(tt.goos, image, job, tt.lookPath)
			if err != nil {
				t.Fatalf("PrintCommand failed: %v", err)
			}
			if cmd != tt.wantCmd {
				t.Errorf("Expected command %s, got %s", tt.wantCmd, cmd)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("Expected args %v, got %v", tt.wantArgs, args)
			}
		})
	}
}

func TestPrintCommand_Android(t *testing.T) {
	cmd, args, err := PrintCommand(OSAndroid, "/sdcard/72names.jpg", "job", installed())
	if err != nil {
		t.Fatalf("PrintCommand failed: %v", err)
	}
	if cmd != AMCommand {
		t.Errorf("Expected %s, got %s", AMCommand, cmd)
	}
	if !strings.Contains(strings.Join(args, " "), "file:///sdcard/72names.jpg") {
		t.Errorf("Expected file URI in args, got %v", args)
	}
}

func TestPrintCommand_Unsupported(t *testing.T) {
	tests := []struct {
		goos     string
		lookPath func(string) bool
	}{
		{"plan9", installed(LPCommand)},
		{OSLinux, installed()},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			_, _, err := PrintCommand(tt.goos, "/x.jpg", "job", tt.lookPath)
			if !errors.Is(err, ErrPrintUnsupported) {
				t.Errorf("Expected ErrPrintUnsupported, got %v", err)
			}
		})
	}
}

func TestPrintImage_MissingImage(t *testing.T) {
	err := PrintImage(context.Background(), filepath.Join(t.TempDir(), ChartImageFileName))
	if err == nil {
		t.Fatal("Expected error for missing image, got nil")
	}
	if !strings.Contains(err.Error(), "image does not exist:") {
		t.Errorf("Error message should contain 'image does not exist:', got: %v", err)
	}
}
