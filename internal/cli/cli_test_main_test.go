package cli_test

import (
	"os"
	"testing"

	"gitseed.dev/gitseed/internal/testhelper"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testhelper.Cleanup()
	os.Exit(code)
}

// getGitseedBinary returns the path to the shared gitseed binary.
func getGitseedBinary(t *testing.T) string {
	t.Helper()
	binaryPath := testhelper.GetSharedBinaryPath()
	if binaryPath == "" {
		if err := testhelper.GetBinaryError(); err != nil {
			t.Fatalf("failed to build gitseed binary: %v", err)
		}
		t.Fatal("gitseed binary not built")
	}
	return binaryPath
}
