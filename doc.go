// Package stockchart is the data engine behind an annotated stock chart:
// daily price bars, a trailing moving average, traded volume, and the user's
// own buy/sell history merged onto one timeline, with crosshair inspection.
//
// The package owns the aggregation and interaction logic only. It merges
// heterogeneous date-keyed inputs (market bars, transactions) into one
// ordered series, derives the moving average and the cumulative cost basis,
// maps data onto pixel space through invertible scales, and resolves pointer
// positions to the nearest bar. Fetching market data (package yahoo) and
// drawing (package renderer) are collaborators consuming its outputs.
//
// Everything is computed from immutable inputs into fresh immutable values:
// one load cycle builds a [Chart], each pointer event asks it for a
// [Crosshair], and no call leaves state behind for the next.
package stockchart
