package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gobayes/app"
	"gobayes/domain/bayes"
)

// Builder turns computation results into markdown reports. A report is
// the text stand-in for a plot: posterior summary numbers plus the curve
// labels a rendering surface would use.
type Builder struct{}

// NewBuilder creates a report builder
func NewBuilder() *Builder {
	return &Builder{}
}

// CoinReport renders a markdown report for a coin computation
func (b *Builder) CoinReport(res *app.CoinResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", res.Labels.Title)
	fmt.Fprintf(&sb, "Observed **%d** heads in **%d** tosses.\n\n", res.Observation.Successes, res.Observation.Trials)
	fmt.Fprintf(&sb, "- Prior: Beta(%.1f, %.1f)\n", res.Prior.Alpha, res.Prior.Beta)
	fmt.Fprintf(&sb, "- Posterior: Beta(%.1f, %.1f)\n\n", res.Posterior.Alpha, res.Posterior.Beta)
	b.writeCurveSummary(&sb, res.Curves)
	fmt.Fprintf(&sb, "\nComputation `%s` (fingerprint `%s`).\n", res.ComputationID, shortFingerprint(res.Fingerprint.String()))
	return sb.String()
}

// PredictionReport renders a markdown report for a predictive query
func (b *Builder) PredictionReport(pred *app.CoinPrediction) string {
	var sb strings.Builder
	sb.WriteString("# Predictive Probability\n\n")
	fmt.Fprintf(&sb, "For a future event of %d trials with outcome %s %d heads:\n\n",
		pred.Query.FutureTrials, pred.Query.Comparator, pred.Query.Threshold)
	fmt.Fprintf(&sb, "**Predictive Probability = %.4f**\n\n", pred.Probability)
	fmt.Fprintf(&sb, "Posterior Beta(%.1f, %.1f), Beta-Binomial over %d future trials.\n",
		pred.Posterior.Alpha, pred.Posterior.Beta, pred.Query.FutureTrials)
	return sb.String()
}

// DiceReport renders a markdown report for a dice computation
func (b *Builder) DiceReport(res *app.DiceResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", res.Labels.Title)
	fmt.Fprintf(&sb, "Base per-toss probability %.4f with %d dice.\n\n", res.BaseP, res.Dice)
	fmt.Fprintf(&sb, "- Prior: Beta(%.1f, %.1f)\n", res.Prior.Alpha, res.Prior.Beta)
	fmt.Fprintf(&sb, "- Observed: %d successes in %d trials\n\n", res.Observation.Successes, res.Observation.Trials)
	b.writeCurveSummary(&sb, res.Curves)
	fmt.Fprintf(&sb, "\nComputation `%s` (fingerprint `%s`).\n", res.ComputationID, shortFingerprint(res.Fingerprint.String()))
	return sb.String()
}

// PokerReport renders a markdown report for a poker computation
func (b *Builder) PokerReport(res *app.PokerResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", res.Labels.Title)
	fmt.Fprintf(&sb, "Per-hand probability %.8f, per-game event probability %.6f.\n\n", res.PerHandP, res.EventP)
	fmt.Fprintf(&sb, "- Prior: Beta(%.1f, %.1f)\n", res.Prior.Alpha, res.Prior.Beta)
	fmt.Fprintf(&sb, "- Observed: %d successes in %d games\n\n", res.Observation.Successes, res.Observation.Trials)
	b.writeCurveSummary(&sb, res.Curves)
	fmt.Fprintf(&sb, "\nComputation `%s` (fingerprint `%s`).\n", res.ComputationID, shortFingerprint(res.Fingerprint.String()))
	return sb.String()
}

// writeCurveSummary reduces the posterior curve to the numbers a reader
// scans a plot for: mode, mean and a central 95% credible interval
func (b *Builder) writeCurveSummary(sb *strings.Builder, curves *bayes.PosteriorResult) {
	sb.WriteString("## Posterior summary\n\n")
	fmt.Fprintf(sb, "| Mode | Mean | 95%% credible interval |\n")
	fmt.Fprintf(sb, "|------|------|------------------------|\n")
	fmt.Fprintf(sb, "| %.4f | %.4f | [%.4f, %.4f] |\n",
		curves.Mode(), curves.Mean(), curves.Quantile(0.025), curves.Quantile(0.975))
}

// RenderHTML converts a markdown report to an HTML fragment
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
