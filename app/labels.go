package app

// CurveLabels carries the axis and legend text a rendering surface needs
// to display the three aligned curves of a computation. The engine never
// depends on these; they are presentation hints only.
type CurveLabels struct {
	Title            string `json:"title"`
	XAxis            string `json:"x_axis"`
	YAxis            string `json:"y_axis"`
	PriorLegend      string `json:"prior_legend"`
	LikelihoodLegend string `json:"likelihood_legend"`
	PosteriorLegend  string `json:"posterior_legend"`
}
