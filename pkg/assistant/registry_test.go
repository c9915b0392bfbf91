package assistant

import "testing"

func TestRegistryCatalog(t *testing.T) {
	r := NewRegistry()

	wantNames := []string{
		"get_daily_challenge",
		"get_problem",
		"search_problems",
		"get_user_profile",
		"get_recent_submissions",
	}
	if r.Len() != len(wantNames) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(wantNames))
	}

	decls := r.Declarations()
	if len(decls) != len(wantNames) {
		t.Fatalf("Declarations() returned %d tools, want %d", len(decls), len(wantNames))
	}
	for i, name := range wantNames {
		if decls[i].Function.Name != name {
			t.Errorf("Declarations()[%d].Name = %q, want %q", i, decls[i].Function.Name, name)
		}
		if decls[i].Type != "function" {
			t.Errorf("Declarations()[%d].Type = %q, want function", i, decls[i].Type)
		}
		if decls[i].Function.Description == "" {
			t.Errorf("%s has no description", name)
		}
	}
}

func TestRegistryDeclarationOrderStable(t *testing.T) {
	first := NewRegistry().Declarations()
	for i := 0; i < 10; i++ {
		again := NewRegistry().Declarations()
		for j := range first {
			if again[j].Function.Name != first[j].Function.Name {
				t.Fatalf("declaration order varied at %d: %q vs %q",
					j, again[j].Function.Name, first[j].Function.Name)
			}
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		kind ToolKind
	}{
		{"get_daily_challenge", ToolDailyChallenge},
		{"get_problem", ToolProblem},
		{"search_problems", ToolSearchProblems},
		{"get_user_profile", ToolUserProfile},
		{"get_recent_submissions", ToolRecentSubmissions},
	}
	for _, tt := range tests {
		d, ok := r.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.name)
			continue
		}
		if d.Kind != tt.kind {
			t.Errorf("Lookup(%q).Kind = %d, want %d", tt.name, d.Kind, tt.kind)
		}
	}

	if _, ok := r.Lookup("get_weather"); ok {
		t.Error("Lookup(get_weather) unexpectedly found")
	}
}

func TestRegistryProblemRequiresSlug(t *testing.T) {
	r := NewRegistry()

	d, ok := r.Lookup("get_problem")
	if !ok {
		t.Fatal("get_problem not registered")
	}
	required, ok := d.Parameters["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "title_slug" {
		t.Errorf("get_problem required = %v, want [title_slug]", d.Parameters["required"])
	}
}
