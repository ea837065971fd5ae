// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGetKnownIssues(t *testing.T) {
	ids := []Id{
		ConfigFileNotFoundId,
		MarkerNotFoundId,
		MarkersInvertedId,
		NoProfilesId,
		SettingsLoadFailedId,
		ReloadFailedId,
	}

	for _, id := range ids {
		i := Get(id)
		if i == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if i.Id() != id {
			t.Errorf("Get(%d) returned issue with id %d", id, i.Id())
		}
		if strings.TrimSpace(string(i.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}
}

func TestGetUnknownIssue(t *testing.T) {
	if Get(Id(9999)) != nil {
		t.Error("expected nil for unknown issue id")
	}
}

func TestValuesCoversCatalog(t *testing.T) {
	vals := Values()
	if len(vals) != len(issues) {
		t.Errorf("Values returned %d issues, catalog has %d", len(vals), len(issues))
	}
	for i := 1; i < len(vals); i++ {
		if vals[i-1].Id() >= vals[i].Id() {
			t.Errorf("Values not sorted by id: %d before %d", vals[i-1].Id(), vals[i].Id())
		}
	}
}

func TestRenderUsesRenderer(t *testing.T) {
	orig := render
	defer func() { render = orig }()

	var gotIn, gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotIn, gotStyle = in, stylePath
		return "rendered", nil
	}

	out, err := Get(MarkerNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "rendered" {
		t.Errorf("expected stubbed renderer output, got %q", out)
	}
	if gotStyle != "dark" {
		t.Errorf("expected style %q, got %q", "dark", gotStyle)
	}
	if !strings.Contains(gotIn, "Display section markers not found") {
		t.Errorf("renderer did not receive the issue markdown:\n%s", gotIn)
	}
}
