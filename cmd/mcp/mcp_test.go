/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wongjn/tailsweep/design"
	"github.com/wongjn/tailsweep/theme"
)

func testServer(t *testing.T) *server {
	t.Helper()
	sys, err := design.New(theme.Default(), design.Options{})
	if err != nil {
		t.Fatalf("building system: %v", err)
	}
	return newServer(sys)
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestMigrateClasses(t *testing.T) {
	srv := testServer(t)

	result, _, err := srv.migrateClasses(context.Background(), nil, migrateClassesInput{
		Classes: []string{"m-[1rem]", "btn", "[display:flex]"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `["m-4","btn","flex"]`
	if got := resultText(t, result); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestMigrateClasses_Empty(t *testing.T) {
	srv := testServer(t)

	result, _, err := srv.migrateClasses(context.Background(), nil, migrateClassesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, result); got != "[]" {
		t.Errorf("expected empty list, got %s", got)
	}
}

func TestCompileClass(t *testing.T) {
	srv := testServer(t)

	result, _, err := srv.compileClass(context.Background(), nil, compileClassInput{Class: "m-4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, result); got != "margin: 1rem;" {
		t.Errorf("expected margin declaration, got %q", got)
	}
}

func TestCompileClass_Unknown(t *testing.T) {
	srv := testServer(t)

	_, _, err := srv.compileClass(context.Background(), nil, compileClassInput{Class: "no-such-class"})
	if err == nil {
		t.Fatal("expected error for unknown class, got nil")
	}
	if !strings.Contains(err.Error(), "no-such-class") {
		t.Errorf("expected class name in error, got %v", err)
	}
}
