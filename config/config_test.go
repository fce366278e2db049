package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pagination.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
operations:
  - name: ListObjects
    input_token: Marker
    output_token: NextMarker
    limit_key: MaxKeys
    result_key: Contents
    more_results: IsTruncated
    page_size: 100
  - name: ListObjectVersions
    input_token: [KeyMarker, VersionIdMarker]
    output_token: [NextKeyMarker, NextVersionIdMarker]
    result_key: Versions
`)

	configs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("loaded %d operations, want 2", len(configs))
	}

	list, ok := configs["ListObjects"]
	if !ok {
		t.Fatal("ListObjects missing; operation names must keep their case")
	}
	if len(list.InputToken) != 1 || list.InputToken[0] != "Marker" {
		t.Errorf("InputToken = %v, want [Marker]", list.InputToken)
	}
	if list.LimitKey != "MaxKeys" || list.ResultKey != "Contents" || list.MoreResults != "IsTruncated" {
		t.Errorf("unexpected keys: %+v", list)
	}
	if list.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", list.PageSize)
	}

	versions := configs["ListObjectVersions"]
	if len(versions.InputToken) != 2 || len(versions.OutputToken) != 2 {
		t.Errorf("composite token not parsed: %+v", versions)
	}
	if versions.OutputToken[1] != "NextVersionIdMarker" {
		t.Errorf("OutputToken = %v", versions.OutputToken)
	}
}

func TestLoadRejectsArityMismatch(t *testing.T) {
	path := writeConfig(t, `
operations:
  - name: Broken
    input_token: [A, B]
    output_token: NextA
    result_key: Items
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected an arity mismatch error")
	}
}

func TestLoadRejectsMissingName(t *testing.T) {
	path := writeConfig(t, `
operations:
  - input_token: Marker
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected a missing name error")
	}
}

func TestLoadRejectsDuplicateName(t *testing.T) {
	path := writeConfig(t, `
operations:
  - name: List
    result_key: Items
  - name: List
    result_key: Items
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected a duplicate name error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected a read error")
	}
}

func TestProviderRegistry(t *testing.T) {
	path := writeConfig(t, `
operations:
  - name: List
    input_token: Marker
    output_token: NextMarker
    result_key: Items
`)

	provider, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	registry := provider.Registry(nil)
	if !registry.CanBuild("List") {
		t.Error("registry cannot build the configured operation")
	}
	if registry.CanBuild("Other") {
		t.Error("registry claims an unconfigured operation")
	}
}

func TestProviderReload(t *testing.T) {
	path := writeConfig(t, `
operations:
  - name: List
    result_key: Items
`)

	provider, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	updated := `
operations:
  - name: List
    result_key: Items
  - name: Describe
    result_key: Results
`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}
	if err := provider.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if _, ok := provider.Config("Describe"); !ok {
		t.Error("reload did not pick up the new operation")
	}
}
