/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"errors"
	"testing"
)

func collect(t *Theme) []string {
	var keys []string
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

func TestSetKeepsInsertionOrder(t *testing.T) {
	th := New()
	th.Set("--b", "2")
	th.Set("--a", "1")
	th.Set("--c", "3")
	th.Set("--a", "changed")

	keys := collect(th)
	want := []string{"--b", "--a", "--c"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	if v, _ := th.Get("--a"); v != "changed" {
		t.Errorf("re-set value = %q, want %q", v, "changed")
	}
}

func TestDelete(t *testing.T) {
	th := New()
	th.Set("--a", "1")
	th.Set("--b", "2")
	th.Delete("--a")

	if _, ok := th.Get("--a"); ok {
		t.Error("deleted key still present")
	}
	if th.Len() != 1 {
		t.Errorf("Len() = %d, want 1", th.Len())
	}

	// Deleting a missing key is a no-op.
	th.Delete("--missing")
	if th.Len() != 1 {
		t.Errorf("Len() after no-op delete = %d, want 1", th.Len())
	}
}

func TestNamespace(t *testing.T) {
	th := New()
	th.Set("--spacing", "0.25rem")
	th.Set("--color-red-500", "#ef4444")
	th.Set("--color-blue-500", "#3b82f6")
	th.Set("--text-sm", "0.875rem")

	var names []string
	for name, value := range th.Namespace("--color-") {
		names = append(names, name)
		if value == "" {
			t.Errorf("empty value for %q", name)
		}
	}

	if len(names) != 2 || names[0] != "red-500" || names[1] != "blue-500" {
		t.Errorf("Namespace(--color-) = %v, want [red-500 blue-500]", names)
	}
}

func TestMerge(t *testing.T) {
	th := New()
	th.Set("--color-red-500", "#ef4444")
	th.Set("--spacing", "0.25rem")

	th.Merge(map[string]string{
		"--color-red-500": "#ff0000",
		"--spacing":       "initial",
		"--color-brand":   "#123456",
		"--color-accent":  "#654321",
	})

	if v, _ := th.Get("--color-red-500"); v != "#ff0000" {
		t.Errorf("override value = %q, want %q", v, "#ff0000")
	}
	if _, ok := th.Get("--spacing"); ok {
		t.Error("initial did not delete --spacing")
	}

	keys := collect(th)
	// Existing keys keep their position; new keys append sorted.
	want := []string{"--color-red-500", "--color-accent", "--color-brand"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestClone_Isolation(t *testing.T) {
	th := New()
	th.Set("--a", "1")

	clone := th.Clone()
	clone.Set("--a", "changed")
	clone.Set("--b", "2")

	if v, _ := th.Get("--a"); v != "1" {
		t.Errorf("original mutated through clone: %q", v)
	}
	if _, ok := th.Get("--b"); ok {
		t.Error("key added to original through clone")
	}
}

func TestResolve(t *testing.T) {
	th := New()
	th.Set("--color-red-500", "#ef4444")
	th.Set("--color-brand", "{--color-red-500}")
	th.Set("--color-accent", "{--color-brand}")
	th.Set("--border", "1px solid {--color-brand}")

	if err := th.Resolve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct{ key, want string }{
		{"--color-brand", "#ef4444"},
		{"--color-accent", "#ef4444"},
		{"--border", "1px solid #ef4444"},
	}
	for _, tt := range tests {
		if v, _ := th.Get(tt.key); v != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, v, tt.want)
		}
	}
}

func TestResolve_ChainBeforeDefinition(t *testing.T) {
	// Aliases resolve regardless of definition order.
	th := New()
	th.Set("--a", "{--b}")
	th.Set("--b", "{--c}")
	th.Set("--c", "16px")

	if err := th.Resolve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := th.Get("--a"); v != "16px" {
		t.Errorf("--a = %q, want %q", v, "16px")
	}
}

func TestResolve_UnknownAlias(t *testing.T) {
	th := New()
	th.Set("--a", "{--missing}")

	err := th.Resolve()
	if !errors.Is(err, ErrUnknownAlias) {
		t.Fatalf("expected ErrUnknownAlias, got %v", err)
	}
}

func TestResolve_Cycle(t *testing.T) {
	th := New()
	th.Set("--a", "{--b}")
	th.Set("--b", "{--a}")

	err := th.Resolve()
	if !errors.Is(err, ErrCircularAlias) {
		t.Fatalf("expected ErrCircularAlias, got %v", err)
	}
}

func TestResolve_SelfCycle(t *testing.T) {
	th := New()
	th.Set("--a", "{--a}")

	err := th.Resolve()
	if !errors.Is(err, ErrCircularAlias) {
		t.Fatalf("expected ErrCircularAlias, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	th := Default()

	tests := []struct{ key, want string }{
		{"--spacing", "0.25rem"},
		{"--color-red-500", "#ef4444"},
		{"--color-white", "#ffffff"},
		{"--text-sm", "0.875rem"},
		{"--text-sm--line-height", "1.25rem"},
		{"--radius-md", "0.375rem"},
		{"--breakpoint-md", "48rem"},
		{"--leading-tight", "1.25"},
	}
	for _, tt := range tests {
		v, ok := th.Get(tt.key)
		if !ok {
			t.Errorf("missing default key %s", tt.key)
			continue
		}
		if v != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, v, tt.want)
		}
	}

	// Each call returns an independent copy.
	th.Set("--spacing", "1px")
	if v, _ := Default().Get("--spacing"); v != "0.25rem" {
		t.Errorf("Default() shares state across calls: %q", v)
	}
}
