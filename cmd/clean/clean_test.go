package clean

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestGetCommand(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()

	if cmd == nil {
		t.Fatal("GetCommand() returned nil")
	}
	if cmd.Name != "clean" {
		t.Errorf("command name = %q, want %q", cmd.Name, "clean")
	}
	if cmd.Action == nil {
		t.Fatal("command action should not be nil")
	}
}

func TestCleanCommand_Execute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "icon16.png")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("seeding %s: %v", path, err)
	}

	cmd := GetCommand()
	if err := cmd.Run(context.Background(), []string{"clean", "--dir", dir, "--size", "16"}); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("icon16.png still exists after clean")
	}
}

func TestCleanCommand_EmptyDir(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()
	if err := cmd.Run(context.Background(), []string{"clean", "--dir", t.TempDir()}); err != nil {
		t.Errorf("Run() on empty directory error = %v, want nil", err)
	}
}
