/*
Copyright 2026 John Wong. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rewrite

import (
	"testing"

	"github.com/wongjn/tailsweep/design"
	"github.com/wongjn/tailsweep/extract"
	"github.com/wongjn/tailsweep/migrate"
	"github.com/wongjn/tailsweep/theme"
)

func newMigrator(t *testing.T) *migrate.Migrator {
	t.Helper()
	sys, err := design.New(theme.Default(), design.Options{})
	if err != nil {
		t.Fatalf("building system: %v", err)
	}
	return migrate.New(sys, migrate.Options{})
}

func TestFile(t *testing.T) {
	mig := newMigrator(t)

	src := []byte(`<div class="m-[1rem] btn [display:flex]">x</div>`)
	edits := File(mig, "index.html", src)

	want := []Edit{
		{Span: extract.Span{Token: "m-[1rem]", Start: 12, End: 20, Line: 1, Column: 13}, Replacement: "m-4"},
		{Span: extract.Span{Token: "[display:flex]", Start: 25, End: 39, Line: 1, Column: 26}, Replacement: "flex"},
	}
	if len(edits) != len(want) {
		t.Fatalf("expected %d edits, got %d: %+v", len(want), len(edits), edits)
	}
	for i := range want {
		if edits[i] != want[i] {
			t.Errorf("edit %d: expected %+v, got %+v", i, want[i], edits[i])
		}
	}
}

func TestFile_NoRewrites(t *testing.T) {
	mig := newMigrator(t)

	src := []byte(`<div class="btn active m-4">x</div>`)
	if edits := File(mig, "index.html", src); len(edits) != 0 {
		t.Errorf("expected no edits, got %+v", edits)
	}
}

func TestFile_CanonicalizesSpelling(t *testing.T) {
	mig := newMigrator(t)

	src := []byte(`<p class="[scroll-behavior:_smooth_]"></p>`)
	edits := File(mig, "index.html", src)

	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}
	if edits[0].Replacement != "[scroll-behavior:smooth]" {
		t.Errorf("expected canonical spelling, got %q", edits[0].Replacement)
	}
}

func TestApply(t *testing.T) {
	mig := newMigrator(t)

	src := []byte(`<div class="m-[1rem] btn [display:flex]">x</div>`)
	got := string(Apply(src, File(mig, "index.html", src)))

	want := `<div class="m-4 btn flex">x</div>`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestApply_OffsetsStayValid(t *testing.T) {
	src := []byte("aa bb cc")
	edits := []Edit{
		{Span: extract.Span{Token: "aa", Start: 0, End: 2}, Replacement: "XXXX"},
		{Span: extract.Span{Token: "cc", Start: 6, End: 8}, Replacement: "Y"},
	}

	got := string(Apply(src, edits))
	want := "XXXX bb Y"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if string(src) != "aa bb cc" {
		t.Errorf("source slice mutated: %q", src)
	}
}
