package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrPrintUnsupported is returned when the platform offers no print command
var ErrPrintUnsupported = errors.New("printing is not supported on this platform")

// Print command constants
const (
	LPCommand         = "lp"
	LPRCommand        = "lpr"
	PowerShellCommand = "powershell"
	AMCommand         = "am"
	JobNamePrefix     = "names72-"
)

// PrintCommand builds the command that sends an image to the system print
// queue. lookPath reports whether a command is installed.
func PrintCommand(goos, imagePath, jobName string, lookPath func(string) bool) (string, []string, error) {
	switch goos {
	case OSDarwin, OSLinux:
		if lookPath(LPCommand) {
			return LPCommand, []string{"-t", jobName, imagePath}, nil
		}
		if lookPath(LPRCommand) {
			return LPRCommand, []string{"-J", jobName, imagePath}, nil
		}
		return "", nil, fmt.Errorf("%w: neither %s nor %s is installed", ErrPrintUnsupported, LPCommand, LPRCommand)
	case OSWindows:
		script := fmt.Sprintf("Start-Process -FilePath '%s' -Verb Print", imagePath)
		return PowerShellCommand, []string{"-NoProfile", "-Command", script}, nil
	case OSAndroid:
		// hands the image to the system share sheet, where print services register
		return AMCommand, []string{
			"start", "-a", "android.intent.action.SEND",
			"-t", "image/jpeg",
			"--eu", "android.intent.extra.STREAM", "file://" + imagePath,
		}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrPrintUnsupported, goos)
	}
}

// PrintImage sends the image at imagePath to the default printer
func PrintImage(ctx context.Context, imagePath string) (err error) {
	ctx, span := tracer.Start(ctx, "print image")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	foundPath, err := FindFileWithFallback(imagePath)
	if err != nil {
		return fmt.Errorf("image does not exist: %w", err)
	}

	absPath, err := filepath.Abs(foundPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	goos := runtime.GOOS
	if IsAndroid() {
		goos = OSAndroid
	}

	jobName := JobNamePrefix + uuid.NewString()
	name, args, err := PrintCommand(goos, absPath, jobName, commandExists)
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.String("print.command", name),
		attribute.String("print.job", jobName),
	)
	logger.Info("printing image", "path", absPath, "command", name, "job", jobName)

	cmd := exec.CommandContext(ctx, name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		logger.Warn("print command output", "command", name, "output", string(out))
		return fmt.Errorf("print command %s failed: %w", name, err)
	}
	return nil
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
