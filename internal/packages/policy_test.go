package packages_test

import (
	"reflect"
	"testing"

	"xbrlgate/internal/packages"
)

func TestPolicyForEBA(t *testing.T) {
	policy := packages.PolicyFor(packages.ConventionEBA)

	wantLabels := []string{
		"XML Schema files",
		"Label linkbase files",
		"Presentation linkbase files",
		"Calculation linkbase files",
		"Definition linkbase files",
		"Module definition files",
	}
	if len(policy) != len(wantLabels) {
		t.Fatalf("pattern count: got %d, want %d", len(policy), len(wantLabels))
	}
	for i, pattern := range policy {
		if pattern.Label != wantLabels[i] {
			t.Errorf("pattern %d: got %q, want %q", i, pattern.Label, wantLabels[i])
		}
	}

	files := []string{
		"taxonomy/xsd/entry.xsd",
		"taxonomy/lab/labels_en.xml",
		"taxonomy/mod/module.xml",
	}
	found, missing := policy.Evaluate(files)

	wantFound := []string{"XML Schema files", "Label linkbase files", "Module definition files"}
	wantMissing := []string{"Presentation linkbase files", "Calculation linkbase files", "Definition linkbase files"}
	if !reflect.DeepEqual(found, wantFound) {
		t.Errorf("found: got %v, want %v", found, wantFound)
	}
	if !reflect.DeepEqual(missing, wantMissing) {
		t.Errorf("missing: got %v, want %v", missing, wantMissing)
	}
}

func TestPolicyForTraditional(t *testing.T) {
	policy := packages.PolicyFor(packages.ConventionTraditional)

	if len(policy) != 2 {
		t.Fatalf("pattern count: got %d, want 2", len(policy))
	}

	tests := []struct {
		name        string
		files       []string
		wantFound   []string
		wantMissing []string
	}{
		{
			name:        "both categories",
			files:       []string{"entity.xsd", "entity_cal.xml"},
			wantFound:   []string{"XML Schema files", "Linkbase files"},
			wantMissing: []string{},
		},
		{
			name:        "plain xml is not a linkbase",
			files:       []string{"entity.xsd", "entity.xml"},
			wantFound:   []string{"XML Schema files"},
			wantMissing: []string{"Linkbase files"},
		},
		{
			name:        "nothing matches",
			files:       []string{"readme.md"},
			wantFound:   []string{},
			wantMissing: []string{"XML Schema files", "Linkbase files"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, missing := policy.Evaluate(tt.files)
			if !reflect.DeepEqual(found, tt.wantFound) {
				t.Errorf("found: got %v, want %v", found, tt.wantFound)
			}
			if !reflect.DeepEqual(missing, tt.wantMissing) {
				t.Errorf("missing: got %v, want %v", missing, tt.wantMissing)
			}
		})
	}
}

func TestPolicyForUnknown(t *testing.T) {
	if policy := packages.PolicyFor(packages.ConventionUnknown); policy != nil {
		t.Errorf("expected nil policy, got %d patterns", len(policy))
	}
}
