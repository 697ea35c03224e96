package dockerfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
)

func TestRenderContract(t *testing.T) {
	content, err := Render(Params{Version: "1.2.3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(content)
	for _, want := range []string{
		"FROM quay.io/pypa/manylinux_2_28_x86_64",
		"ARG USER_ID=1000",
		"ARG GROUP_ID=1000",
		"ARG USER_NAME=user",
		"ARG GROUP_NAME=user",
		"dnf install",
		"groupadd --gid ${GROUP_ID} ${GROUP_NAME}",
		"useradd --uid ${USER_ID} --gid ${GROUP_ID}",
		"pip install --no-cache-dir uv",
		"USER ${USER_NAME}",
		"sh.rustup.rs",
		`ENV PATH="/home/${USER_NAME}/.cargo/bin:`,
		`org.opencontainers.image.version="1.2.3"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered definition missing %q", want)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	first, err := Render(Params{Version: "1.2.3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Render(Params{Version: "1.2.3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if digest.FromBytes(first) != digest.FromBytes(second) {
		t.Fatal("identical params produced different content")
	}
}

func TestEmit(t *testing.T) {
	dir := t.TempDir()

	dgst, err := Emit(dir, Params{Version: "1.2.3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, Filename))
	if err != nil {
		t.Fatalf("reading emitted file: %v", err)
	}

	if digest.FromBytes(content) != dgst {
		t.Fatalf("digest = %s, want %s", digest.FromBytes(content), dgst)
	}
}

func TestEmitOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)

	if err := os.WriteFile(path, []byte("stale contents\n"), 0644); err != nil {
		t.Fatalf("seeding stale file: %v", err)
	}

	if _, err := Emit(dir, Params{Version: "1.2.3"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading emitted file: %v", err)
	}
	if strings.Contains(string(content), "stale contents") {
		t.Fatal("previous file content survived the emit")
	}
}

func TestEmitUnwritableDir(t *testing.T) {
	if _, err := Emit(filepath.Join(t.TempDir(), "does-not-exist"), Params{}); err == nil {
		t.Fatal("expected error, got nil")
	}
}
