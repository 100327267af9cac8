package branding

import "testing"

func TestEmbeddedIdentity(t *testing.T) {
	if got := CLIName(); got != "wpscaffold" {
		t.Errorf("CLIName() = %q, want %q", got, "wpscaffold")
	}
	if got := HomeDir(); got != ".wpscaffold" {
		t.Errorf("HomeDir() = %q, want %q", got, ".wpscaffold")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("dest"); got != "WPSCAFFOLD_DEST" {
		t.Errorf("EnvVar(dest) = %q, want %q", got, "WPSCAFFOLD_DEST")
	}
}
