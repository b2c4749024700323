package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"endcard/internal/services"
)

func TestNewCLIWithBinary(t *testing.T) {
	cli := NewCLI(WithBinary("/opt/ffmpeg"))
	if cli.binary != "/opt/ffmpeg" {
		t.Fatalf("expected binary override to be applied, got %q", cli.binary)
	}
}

func TestRenderRequiresOutputPath(t *testing.T) {
	job := sampleJob()
	job.OutputPath = ""
	if err := NewCLI().Render(context.Background(), job, nil); err == nil {
		t.Fatal("expected error when output path is empty")
	}
}

func TestRenderRequiresLayerPaths(t *testing.T) {
	job := sampleJob()
	job.Overlay.Path = ""
	if err := NewCLI().Render(context.Background(), job, nil); err == nil {
		t.Fatal("expected error when a layer path is empty")
	}
}

func TestRenderSuccess(t *testing.T) {
	setHelperCommand(t, "success")

	var updates []ProgressUpdate
	err := NewCLI().Render(context.Background(), sampleJob(), func(update ProgressUpdate) {
		updates = append(updates, update)
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if len(updates) != 2 {
		t.Fatalf("expected 2 progress updates, got %d", len(updates))
	}
	first := updates[0]
	if first.Percent != 50 || first.Seconds != 10 {
		t.Fatalf("unexpected first update %+v", first)
	}
	if first.FPS != 25 || first.Speed != 1.25 {
		t.Fatalf("expected fps/speed from report, got %+v", first)
	}
	last := updates[1]
	if last.Percent != 100 || last.Seconds != 20 {
		t.Fatalf("unexpected final update %+v", last)
	}
}

func TestRenderFailureKeepsToolOutput(t *testing.T) {
	setHelperCommand(t, "failure")

	err := NewCLI().Render(context.Background(), sampleJob(), nil)
	if err == nil {
		t.Fatal("expected render failure error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "ffmpeg exploded") {
		t.Fatalf("expected stderr tail in error, got %v", err)
	}
}

func TestRenderPassesRuntimeFlags(t *testing.T) {
	var capturedArgs []string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		capturedArgs = append([]string(nil), args...)
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "ENDCARD_FFMPEG_HELPER_MODE=success")
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})

	job := sampleJob()
	if err := NewCLI().Render(context.Background(), job, nil); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if len(capturedArgs) < len(runtimeFlags) {
		t.Fatalf("expected ffmpeg arguments to be captured, got %v", capturedArgs)
	}
	for i, flag := range runtimeFlags {
		if capturedArgs[i] != flag {
			t.Fatalf("args[%d] = %q, want %q", i, capturedArgs[i], flag)
		}
	}
	if findArg(capturedArgs, job.OutputPath) == -1 {
		t.Fatalf("expected output path in args %v", capturedArgs)
	}
}

func TestProgressStateSkipsMalformed(t *testing.T) {
	state := progressState{duration: 20}
	for _, line := range []string{"garbage", "out_time_us=N/A", "speed=N/A", "fps=bogus"} {
		if _, ok := state.consume(line); ok {
			t.Fatalf("line %q should not produce an update", line)
		}
	}

	update, ok := state.consume("progress=continue")
	if !ok {
		t.Fatal("expected update at record boundary")
	}
	if update.Percent != 0 || update.Seconds != 0 {
		t.Fatalf("expected empty update before data, got %+v", update)
	}
}

func TestStderrTail(t *testing.T) {
	if got := stderrTail(""); got != "no tool output" {
		t.Fatalf("empty tail = %q", got)
	}
	if got := stderrTail("first\nsecond"); got != "first | second" {
		t.Fatalf("tail = %q", got)
	}
	long := strings.Repeat("x", maxStderrTail) + "\ntail line"
	if got := stderrTail(long); got != "tail line" {
		t.Fatalf("expected truncation to last line, got %q", got)
	}
}

func setHelperCommand(t *testing.T, mode string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", fmt.Sprintf("ENDCARD_FFMPEG_HELPER_MODE=%s", mode))
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("ENDCARD_FFMPEG_HELPER_MODE") {
	case "success":
		fmt.Println("frame=300")
		fmt.Println("fps=25")
		fmt.Println("out_time_us=10000000")
		fmt.Println("speed=1.25x")
		fmt.Println("progress=continue")
		fmt.Println("out_time_us=20000000")
		fmt.Println("progress=end")
		os.Exit(0)
	case "failure":
		fmt.Fprintln(os.Stderr, "ffmpeg exploded")
		os.Exit(1)
	default:
		os.Exit(0)
	}
}
