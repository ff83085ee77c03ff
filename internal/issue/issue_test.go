// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	t.Parallel()

	ids := []Id{
		ConfigLoadFailedId,
		UnknownFormatId,
		UnknownABIId,
		InvalidArchId,
		SizeInvariantId,
		CompileFailedId,
		OutputWriteFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true

		iss := Get(id)
		if iss == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if !strings.Contains(string(iss.MarkdownMsg()), "# ") {
			t.Errorf("issue %d has no heading", id)
		}
	}

	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1", ConfigLoadFailedId)
	}
}

func TestIssue_Markdown(t *testing.T) {
	t.Parallel()

	md := Get(UnknownABIId).Markdown()
	if !strings.Contains(md, "## See also") || !strings.Contains(md, string(psabiDoc)) {
		t.Errorf("Markdown() missing doc links:\n%s", md)
	}

	if strings.Contains(Get(SizeInvariantId).Markdown(), "See also") {
		t.Error("issue without links should not have a See also section")
	}
}

func TestConfigLoadFailed_NamesExplicitFile(t *testing.T) {
	t.Parallel()

	md := string(Get(ConfigLoadFailedId).MarkdownMsg())
	if !strings.Contains(md, "--config") {
		t.Errorf("MarkdownMsg() should name the --config flag:\n%s", md)
	}
	if strings.Contains(md, "fell back") {
		t.Errorf("MarkdownMsg() should not claim a fallback happened:\n%s", md)
	}
}

func TestIssue_DocLinksReturnsCopy(t *testing.T) {
	t.Parallel()

	links := Get(CompileFailedId).DocLinks()
	links[0] = "changed"
	if Get(CompileFailedId).DocLinks()[0] != psabiDoc {
		t.Error("DocLinks() exposes the shared slice")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(UnknownFormatId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Unknown output format") {
		t.Errorf("Render() output missing heading:\n%s", out)
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != 7 {
		t.Fatalf("Values() returned %d issues, want 7", len(values))
	}
	for i, iss := range values {
		if iss.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, iss.Id(), i+1)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	if Get(Id(9999)) != nil {
		t.Error("Get(9999) should return nil")
	}
}
