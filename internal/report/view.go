package report

import (
	"html/template"

	"morehop/internal/aggregate"
	"morehop/internal/dataset"
)

// View is the render-ready form of a summary.
type View struct {
	Title       string
	Source      string
	Stylesheets []string
	Overview    aggregate.Overview

	HopChart     template.HTML
	HopRows      []aggregate.HopRow
	HopNotice    string
	HopsExcluded int
	Matrix       *aggregate.ReasoningAnswerTable
	MatrixNotice string
	SupportChart template.HTML
	SupportRows  []aggregate.SupportRow
	SupportTotal int
	SupportShown int
	Depth        aggregate.DepthTable
	Example      dataset.Record
}

func newView(summary aggregate.Summary, opts Options) (View, error) {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	top := opts.Top
	if top <= 0 {
		top = DefaultTop
	}
	notices := summary.Notices()
	view := View{
		Title:        title,
		Source:       opts.Source,
		Stylesheets:  opts.Stylesheets,
		Overview:     summary.Overview,
		HopNotice:    notices[aggregate.TableHops],
		Matrix:       summary.ReasoningAnswer,
		MatrixNotice: notices[aggregate.TableReasoningAnswer],
		SupportRows:  summary.Support.Top(top),
		SupportTotal: len(summary.Support.Rows),
		Depth:        summary.Depth,
	}
	view.SupportShown = len(view.SupportRows)
	if opts.Example != nil {
		view.Example = *opts.Example
	} else {
		view.Example = dataset.Sample().Records[0]
	}

	if summary.Hops != nil {
		view.HopRows = summary.Hops.Rows
		view.HopsExcluded = summary.Hops.Excluded
		svg, err := HopChartSVG(*summary.Hops)
		if err != nil {
			return View{}, err
		}
		view.HopChart = template.HTML(svg)
	}
	svg, err := SupportChartSVG(view.SupportRows)
	if err != nil {
		return View{}, err
	}
	view.SupportChart = template.HTML(svg)
	return view, nil
}
