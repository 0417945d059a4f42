package validation_test

import (
	"testing"

	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/internal/validation"
	"github.com/nlnadialigiaconcursos-cmd/tasks-pro/types"
)

func TestTitleProblem(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		wantOK bool
	}{
		{"normal title", "Ship release notes", true},
		{"empty", "", false},
		{"whitespace only", "   \t", false},
		{"single character", "x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := validation.TitleProblem(tt.title)
			if (problem == "") != tt.wantOK {
				t.Errorf("TitleProblem(%q) = %q, wantOK %v", tt.title, problem, tt.wantOK)
			}
		})
	}
}

func TestStatusProblem(t *testing.T) {
	if problem := validation.StatusProblem(types.StatusInProgress); problem != "" {
		t.Errorf("valid status rejected: %s", problem)
	}
	// Empty passes so the store can apply its default.
	if problem := validation.StatusProblem(""); problem != "" {
		t.Errorf("empty status should pass: %s", problem)
	}
	if problem := validation.StatusProblem("archived"); problem == "" {
		t.Error("unknown status should be rejected")
	}
}

func TestPriorityProblem(t *testing.T) {
	if problem := validation.PriorityProblem(types.PriorityUrgent); problem != "" {
		t.Errorf("valid priority rejected: %s", problem)
	}
	if problem := validation.PriorityProblem(""); problem != "" {
		t.Errorf("empty priority should pass: %s", problem)
	}
	if problem := validation.PriorityProblem("critical"); problem == "" {
		t.Error("unknown priority should be rejected")
	}
}

func TestEmailProblem(t *testing.T) {
	if problem := validation.EmailProblem("olivia@example.com"); problem != "" {
		t.Errorf("valid email rejected: %s", problem)
	}
	if problem := validation.EmailProblem(""); problem == "" {
		t.Error("empty email should be rejected")
	}
	if problem := validation.EmailProblem("not-an-email"); problem == "" {
		t.Error("email without @ should be rejected")
	}
}

func TestNameProblem(t *testing.T) {
	if problem := validation.NameProblem("Olivia Chen"); problem != "" {
		t.Errorf("valid name rejected: %s", problem)
	}
	if problem := validation.NameProblem("  "); problem == "" {
		t.Error("blank name should be rejected")
	}
}
