package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(nil, nil)
		SetQuiet(false)
		SetDebug(false)
		SetLogger(nil)
	})
	return &out, &errOut
}

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.lines = append(r.lines, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.lines = append(r.lines, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.lines = append(r.lines, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.lines = append(r.lines, "error:"+msg) }

func TestErrorGoesToStderrInRed(t *testing.T) {
	out, errOut := capture(t)

	Error("upload", "failed")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "upload failed")
	assert.Contains(t, errOut.String(), Red)
}

func TestSuccessAndInfoGoToStdout(t *testing.T) {
	out, errOut := capture(t)

	Success("Book listed successfully!")
	Info("3 books found")

	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), checkmark)
	assert.Contains(t, out.String(), "Book listed successfully!")
	assert.Contains(t, out.String(), "3 books found")
}

func TestWarningAndLogInfoGoToStderr(t *testing.T) {
	out, errOut := capture(t)

	Warning("slow network")
	LogInfo("Logging to file: /tmp/x.log")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Warning:")
	assert.Contains(t, errOut.String(), "Logging to file")
}

func TestQuietSuppressesInfoButNotErrors(t *testing.T) {
	out, errOut := capture(t)
	SetQuiet(true)

	Info("hidden")
	Success("hidden too")
	Error("visible")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "visible")
}

func TestDebugIsGated(t *testing.T) {
	_, errOut := capture(t)

	Debug("not shown")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	Debug("shown")
	assert.Contains(t, errOut.String(), "Debug:")
	assert.Contains(t, errOut.String(), "shown")
}

func TestMessagesAreMirroredToLogger(t *testing.T) {
	capture(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	SetQuiet(true)

	Info("a")
	Warning("b")
	Error("c")
	Debug("d")

	assert.Equal(t, []string{"info:a", "warn:b", "error:c"}, rec.lines)
}
