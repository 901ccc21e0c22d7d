package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/example/grevocab/pkg/models"
)

func TestEscapeHTML(t *testing.T) {
	got := escapeHTML(`a < b & "c" > d`)
	if strings.ContainsAny(got, "<>") {
		t.Errorf("angle brackets survived escaping: %q", got)
	}
	if !strings.Contains(got, "&amp;") {
		t.Errorf("ampersand not escaped: %q", got)
	}
}

func TestRenderRisk_AllSafe(t *testing.T) {
	out := renderRisk(models.ForgettingRisk{SafeWords: 12})

	if !strings.Contains(out, "12 learned words") {
		t.Errorf("safe count missing from %q", out)
	}
	if strings.Contains(out, "High risk") {
		t.Errorf("empty high-risk bucket rendered: %q", out)
	}
}

func TestRenderRisk_ListsWorstFirst(t *testing.T) {
	risk := models.ForgettingRisk{
		HighRisk: []models.AtRiskWord{
			{Word: "abate", DaysSinceReview: 30, LastReviewed: time.Now().AddDate(0, 0, -30)},
			{Word: "cogent", DaysSinceReview: 15, LastReviewed: time.Now().AddDate(0, 0, -15)},
		},
		SafeWords: 1,
	}

	out := renderRisk(risk)
	if strings.Index(out, "abate") > strings.Index(out, "cogent") {
		t.Errorf("oldest word should be listed first:\n%s", out)
	}
}

func TestRenderReadiness_ShowsComponents(t *testing.T) {
	out := renderReadiness(models.ExamReadiness{
		Score:              62,
		Status:             "On Track",
		VocabularyCoverage: 40,
		RetentionScore:     68,
		TestAccuracy:       75,
		ConsistencyScore:   50,
	})

	for _, want := range []string{"62/100", "On Track", "40/100", "68/100", "75/100", "50/100"} {
		if !strings.Contains(out, want) {
			t.Errorf("readiness render missing %q:\n%s", want, out)
		}
	}
}
