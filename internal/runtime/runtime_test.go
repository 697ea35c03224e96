package runtime

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"reflect"
	"testing"
)

func TestBuildCommand(t *testing.T) {
	got := buildCommand(BuildOptions{
		Tag:        "delta-rs-build",
		ContextDir: ".",
		BuildArgs: []BuildArg{
			{Name: "USER_ID", Value: "1001"},
			{Name: "GROUP_ID", Value: "1001"},
			{Name: "USER_NAME", Value: "alice"},
			{Name: "GROUP_NAME", Value: "alice"},
		},
	})

	want := []string{
		"build",
		"--build-arg", "USER_ID=1001",
		"--build-arg", "GROUP_ID=1001",
		"--build-arg", "USER_NAME=alice",
		"--build-arg", "GROUP_NAME=alice",
		"-t", "delta-rs-build",
		".",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
}

func TestBuildCommandNoArgs(t *testing.T) {
	got := buildCommand(BuildOptions{Tag: "img", ContextDir: "/src"})

	want := []string{"build", "-t", "img", "/src"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
}

func TestRunCommand(t *testing.T) {
	got := runCommand(RunOptions{
		Image: "delta-rs-build",
		Mount: Mount{
			Host:      "/work/delta-rs",
			Container: "/home/alice/delta-rs",
		},
		Command: []string{"/bin/bash", "-c", "make build"},
	})

	want := []string{
		"run", "--rm=true",
		"-v", "/work/delta-rs:/home/alice/delta-rs",
		"delta-rs-build",
		"/bin/bash", "-c", "make build",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
}

func TestRunCommandNoMount(t *testing.T) {
	got := runCommand(RunOptions{Image: "img", Command: []string{"true"}})

	want := []string{"run", "--rm=true", "img", "true"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
}

func TestNewDefaults(t *testing.T) {
	rt := New(Config{})
	if rt.binary != DefaultBinary {
		t.Fatalf("binary = %q, want %q", rt.binary, DefaultBinary)
	}

	rt = New(Config{Binary: "podman"})
	if rt.binary != "podman" {
		t.Fatalf("binary = %q, want podman", rt.binary)
	}
}

func TestBuildImageValidation(t *testing.T) {
	rt := New(Config{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	if err := rt.BuildImage(context.Background(), BuildOptions{ContextDir: "."}); !errors.Is(err, ErrMissingTag) {
		t.Fatalf("err = %v, want ErrMissingTag", err)
	}
	if err := rt.BuildImage(context.Background(), BuildOptions{Tag: "img"}); !errors.Is(err, ErrMissingContext) {
		t.Fatalf("err = %v, want ErrMissingContext", err)
	}
}

func TestRunContainerValidation(t *testing.T) {
	rt := New(Config{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	if err := rt.RunContainer(context.Background(), RunOptions{}); !errors.Is(err, ErrMissingImage) {
		t.Fatalf("err = %v, want ErrMissingImage", err)
	}
}

func TestMissingBinary(t *testing.T) {
	rt := New(Config{
		Binary: "wheelforge-test-no-such-binary",
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	})

	err := rt.BuildImage(context.Background(), BuildOptions{Tag: "img", ContextDir: "."})
	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("err = %v, want exec.ErrNotFound in chain", err)
	}
}
