// Package table reads and writes contingency tables as delimited text,
// bridging CSV datasets and the ca core.
//
// Wire format (the layout the analysis CLI consumes):
//
//		,business_uk,business_european,leisure_premium,size
//		British_Airways,12150,1610,7480,25300
//		Ryanair,15,5,20,22260
//
//	  - The header row names the column categories; its first field labels
//	    the row-label column and is ignored.
//	  - The first field of every data record is the row category label.
//	  - All remaining fields are numeric counts.
//	  - A column named "size" (configurable, case-insensitive) is split off
//	    into Dataset.Sizes: it is a presentation weight for point scaling,
//	    never part of the analyzed matrix.
//
// The package performs structural parsing only. Statistical validation
// (degenerate rows, negative counts, duplicate labels, …) is the ca
// core's job; a loaded table is handed to ca.Analyze as-is so the caller
// sees the core's precise sentinel, not a lossy translation.
//
// Error handling (sentinel errors, matched with errors.Is):
//
//   - ErrNoHeader  – the input has no header row at all.
//   - ErrNoRows    – a header but no data records.
//   - ErrRagged    – a record with a deviating field count.
//   - ErrBadNumber – a cell that does not parse as a float.
//
// Example usage:
//
//	ds, err := table.Load("visits.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := ca.Analyze(ds.Table)
package table
