package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDecomposeBell(t *testing.T) {
	out, err := runRoot(t, "decompose", "testdata/bell.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "version 3.0")
	assert.Contains(t, out, "qubit[2] q")
	assert.Contains(t, out, "Rz(3.1415927) q[0]")
	assert.Contains(t, out, "Ry(1.5707963) q[0]")
	assert.Contains(t, out, "CNOT q[0], q[1]")
	assert.Contains(t, out, "b[0] = measure q[0]")
	assert.NotContains(t, out, "H q[0]")
}

func TestDecomposeTargets(t *testing.T) {
	for _, target := range []string{"XYX", "XZX", "YXY", "YZY", "ZXZ", "ZYZ", "zyz"} {
		t.Run(target, func(t *testing.T) {
			out, err := runRoot(t, "decompose", "testdata/bell.yaml", "--target", target)
			require.NoError(t, err)
			assert.Contains(t, out, "version 3.0")
		})
	}
}

func TestDecomposeXYXEmitsXRotations(t *testing.T) {
	out, err := runRoot(t, "decompose", "testdata/bell.yaml", "-t", "XYX")
	require.NoError(t, err)
	assert.Contains(t, out, "Rx(")
	assert.NotContains(t, out, "Rz(")
}

func TestDecomposeJSON(t *testing.T) {
	out, err := runRoot(t, "decompose", "testdata/bell.yaml", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Contains(t, resp.Data.(string), "version 3.0")
}

func TestDecomposeToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.cq")
	out, err := runRoot(t, "decompose", "testdata/bell.yaml", "-o", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "version 3.0")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "version 3.0")
	assert.Contains(t, string(content), "CNOT q[0], q[1]")
}

func TestDecomposeNoVerify(t *testing.T) {
	out, err := runRoot(t, "decompose", "testdata/bell.yaml", "--no-verify")
	require.NoError(t, err)
	assert.Contains(t, out, "version 3.0")
}

func TestDecomposeBadTarget(t *testing.T) {
	out, err := runRoot(t, "decompose", "testdata/bell.yaml", "--target", "ZZZ")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [BAD_TARGET]")
}

func TestDecomposeMissingFile(t *testing.T) {
	out, err := runRoot(t, "decompose", "testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [LOAD_FAILED]")
}

func TestDecomposeInvalidCircuit(t *testing.T) {
	out, err := runRoot(t, "decompose", "testdata/invalid.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [LOAD_FAILED]")
	assert.Contains(t, out, "unknown gate")
}
