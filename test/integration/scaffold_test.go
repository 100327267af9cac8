//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

func demoArgs(extra ...string) []string {
	return append([]string{
		"--name", "Demo Plugin",
		"--slug", "demo",
		"--description", "A test",
		"--author", "Jane",
	}, extra...)
}

func TestScaffoldInCurrentDirectory(t *testing.T) {
	work := t.TempDir()

	res := runCLI(t, work, demoArgs()...)
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stdout = %s", res.ExitCode, res.Stdout)
	}
	if res.Status != "success" {
		t.Fatalf("status = %q, message = %q", res.Status, res.Message)
	}
	if !filepath.IsAbs(res.Path) || filepath.Base(res.Path) != "demo" {
		t.Errorf("path = %q, want absolute path ending in demo", res.Path)
	}

	root := filepath.Join(work, "demo")
	for _, dir := range []string{"admin/css", "admin/js", "admin/partials", "public/css", "public/js", "public/partials", "includes"} {
		assertDirExists(t, filepath.Join(root, filepath.FromSlash(dir)))
	}
	assertFileContains(t, filepath.Join(root, "demo.php"), "DEMO_VERSION")
	assertFileContains(t, filepath.Join(root, "demo.php"), "$plugin = new Demo();")
	assertFileContains(t, filepath.Join(root, "readme.txt"), "=== Demo Plugin ===")
	assertFileContains(t, filepath.Join(root, "readme.txt"), "A test")
	assertFileContains(t, filepath.Join(root, "includes", "class-demo-activator.php"), "class Demo_Activator")
}

func TestScaffoldSecondRunFails(t *testing.T) {
	work := t.TempDir()
	dest := t.TempDir()

	first := runCLI(t, work, demoArgs("--dest", dest)...)
	if first.ExitCode != 0 {
		t.Fatalf("first run exit code = %d: %s", first.ExitCode, first.Message)
	}

	second := runCLI(t, work, demoArgs("--dest", dest)...)
	if second.ExitCode != 1 {
		t.Errorf("second run exit code = %d, want 1", second.ExitCode)
	}
	if second.Status != "error" {
		t.Errorf("second run status = %q, want error", second.Status)
	}
	want := "Directory " + filepath.Join(dest, "demo") + " already exists."
	if second.Message != want {
		t.Errorf("message = %q, want %q", second.Message, want)
	}
}

func TestScaffoldInvalidSlugExitsOne(t *testing.T) {
	work := t.TempDir()

	res := runCLI(t, work, "--name", "X", "--slug", "Not Valid", "--description", "d", "--author", "a")
	if res.ExitCode != 1 || res.Status != "error" {
		t.Fatalf("exit = %d status = %q, want 1/error", res.ExitCode, res.Status)
	}
	if res.Message != "Slug must contain only lowercase letters, numbers, and hyphens." {
		t.Errorf("message = %q", res.Message)
	}

	entries, err := os.ReadDir(work)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("working directory should be untouched, found %d entries", len(entries))
	}
}

func TestScaffoldMissingRequiredFlagExitsOne(t *testing.T) {
	res := runCLI(t, t.TempDir(), "--name", "X", "--slug", "x")
	if res.ExitCode != 1 || res.Status != "error" {
		t.Fatalf("exit = %d status = %q, want 1/error", res.ExitCode, res.Status)
	}
}

func TestScaffoldUnwritableDestination(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dest := t.TempDir()
	if err := os.Chmod(dest, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dest, 0755) })

	res := runCLI(t, t.TempDir(), demoArgs("--dest", dest)...)
	if res.ExitCode != 1 || res.Status != "error" {
		t.Fatalf("exit = %d status = %q, want 1/error", res.ExitCode, res.Status)
	}
	if res.Message == "" {
		t.Error("error result should carry the underlying message")
	}
}
