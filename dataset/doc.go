// Package dataset loads observation series from delimited files and writes
// scan artifacts back out.
//
// # Key Features
//
//   - CSV ingestion with selectable value and timestamp columns
//   - Cleaning on load: blank and NA cells are dropped, and rows are sorted
//     chronologically before the observation index is assigned
//   - Transparent compression by file extension (.gz, .zst, .s2, .lz4) on
//     both the load and export paths
//   - Export of scan curves (CSV) and full detection reports (JSON)
//
// # Usage
//
// Load a monthly price index and detect its structural break:
//
//	s, err := dataset.LoadCSV("pcepi.csv.gz",
//	    dataset.WithValueColumn("PCEPI"),
//	    dataset.WithTimeColumn("observation_date"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := chow.Detect(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = dataset.WriteCurveCSV("curve.csv", report.Scan)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = dataset.WriteReportJSON("report.json", report)
//	if err != nil {
//	    log.Fatal(err)
//	}
package dataset
