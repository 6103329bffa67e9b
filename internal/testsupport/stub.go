package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Every stub script records its argv, one argument per line, to "<path>.args".
const recordArgs = `printf '%s\n' "$@" > "$0.args"
`

// ExitScript returns a stub body that exits with the given code and writes
// nothing.
func ExitScript(code int) string {
	return fmt.Sprintf("exit %d\n", code)
}

// CopyInputScript returns a stub body that copies the -i argument to the -o
// argument and exits 0, standing in for a successful encode.
func CopyInputScript() string {
	return `while [ $# -gt 0 ]; do
  case "$1" in
    -i) in="$2"; shift 2 ;;
    -o) out="$2"; shift 2 ;;
    *) shift ;;
  esac
done
echo "encoding $in"
cp "$in" "$out"
`
}

// KillSelfScript returns a stub body that terminates itself with SIGKILL so
// the parent observes no exit code.
func KillSelfScript() string {
	return "kill -9 $$\n"
}

// WriteStubBinary writes an executable shell script named name into dir and
// returns its absolute path.
func WriteStubBinary(t testing.TB, dir, name, body string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + recordArgs + body
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		t.Fatalf("abs stub path: %v", err)
	}
	return abs
}

// RecordedArgs returns the argv captured by the stub at path. It returns nil
// when the stub never ran.
func RecordedArgs(t testing.TB, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path + ".args")
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}
