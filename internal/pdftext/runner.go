package pdftext

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// Runner executes an external binary and returns its captured output. The
// extractor takes one so tests can script pdftotext, pdftoppm and tesseract
// without the binaries installed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

const stderrLogCap = 8 << 10

type shellRunner struct{}

func (shellRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var out, errb bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &errb

	start := time.Now()
	err := cmd.Run()

	attrs := []any{
		"cmd", name,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		stderr := errb.String()
		if len(stderr) > stderrLogCap {
			stderr = stderr[:stderrLogCap] + "...(truncated)"
		}
		slog.Error("exec failed", append(attrs, "args", args, "error", err, "stderr", stderr)...)
	} else {
		slog.Debug("exec ok", append(attrs, "stdout_bytes", out.Len())...)
	}
	return out.Bytes(), errb.Bytes(), err
}
