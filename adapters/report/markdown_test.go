package report

import (
	"strings"
	"testing"

	gobayesapp "gobayes/app"
	engine "gobayes/internal/bayes"
)

func TestCoinReportContents(t *testing.T) {
	svc := gobayesapp.NewCoinService(engine.NewEngine(500))
	res, err := svc.ComputePosterior(gobayesapp.CoinRequest{Trials: 10, Heads: 3})
	if err != nil {
		t.Fatalf("ComputePosterior: %v", err)
	}

	md := NewBuilder().CoinReport(res)

	for _, want := range []string{
		"# Bayesian Update",
		"Observed **3** heads in **10** tosses",
		"Posterior: Beta(13.0, 17.0)",
		"## Posterior summary",
		"95% credible interval",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("report missing %q:\n%s", want, md)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	out := string(RenderHTML("# Title\n\nSome **bold** text.\n"))

	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Title") {
		t.Fatalf("missing heading in %q", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("missing bold span in %q", out)
	}
}

func TestRenderHTMLTable(t *testing.T) {
	md := "| A | B |\n|---|---|\n| 1 | 2 |\n"
	out := string(RenderHTML(md))
	if !strings.Contains(out, "<table>") {
		t.Fatalf("table extension not rendered in %q", out)
	}
}

func TestShortFingerprint(t *testing.T) {
	if got := shortFingerprint("abcdef0123456789"); got != "abcdef012345" {
		t.Fatalf("got %q", got)
	}
	if got := shortFingerprint("abc"); got != "abc" {
		t.Fatalf("short input must pass through, got %q", got)
	}
}
