package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

const probeScript = `#!/bin/sh
cat <<'JSON'
{
  "streams": [
    {"index": 0, "codec_type": "video", "width": 1280, "height": 720},
    {"index": 1, "codec_type": "audio", "channels": 2}
  ],
  "format": {"nb_streams": 2, "duration": "12.000000"}
}
JSON
`

// StubTools writes executable ffmpeg/ffprobe stand-ins to a fresh directory
// and prepends it to PATH for the remainder of the test. The ffprobe stub
// answers every query with a fixed two-stream payload; the ffmpeg stub
// succeeds without writing anything.
func StubTools(t testing.TB) {
	t.Helper()

	binDir := t.TempDir()
	writeStub(t, filepath.Join(binDir, "ffprobe"), probeScript)
	writeStub(t, filepath.Join(binDir, "ffmpeg"), "#!/bin/sh\nexit 0\n")

	oldPath := os.Getenv("PATH")
	if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
		t.Fatalf("set PATH: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Setenv("PATH", oldPath)
	})
}

func writeStub(t testing.TB, path, script string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", path, err)
	}
}
