// Package plotly renders roadmap projections as self-contained HTML
// pages driven by plotly.js (loaded from its CDN).
//
// # What
//
//   - WriteSankey / SankeyFile: one flow projection as an interactive
//     sankey diagram. Stage prefixes ("Mission: ", "Capability: ",
//     "Readiness: ", "Dependency: "), label truncation, and the group
//     color palette are applied here; the sankey package stays
//     presentation-free.
//   - WriteRadar / RadarFile: the whole model as polar charts, one trace
//     per mission over the capability union, a new chart every
//     MissionsPerChart missions.
//
// Pages are built from embedded html/template files; chart data is
// encoded to JSON by the template engine, so a page is written either
// whole or not at all.
//
// # Determinism
//
// Output bytes depend only on the input model/projection and options:
// node and trace order follow the input order, trace colors cycle a
// fixed palette, and radial scales are fixed per axis rather than
// derived from the data.
//
// # Errors
//
//   - ErrNilFlow / ErrNilData: nil projection or model.
//   - ErrEmptyFlow: nothing to draw (no nodes, no links, or an empty
//     model).
//   - roadmap.ErrUnknownAxis: radar axis outside dependency/readiness.
//
// File variants wrap filesystem errors with the failing path's role.
//
// # Complexity
//
// Linear in nodes plus links (sankey) or missions times capabilities
// (radar), plus the rendered page size.
package plotly
