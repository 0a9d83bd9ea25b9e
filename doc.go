// Package wordninja splits concatenated words using a rank-based cost model
// built from a word frequency list.
//
// # Quick Start
//
//	s, err := wordninja.New("") // bundled English dictionary
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	out, err := s.Split(ctx, "denythyfatherandrefusethyname")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // deny thy father and refuse thy name
//
// For one-off calls the package-level Split and SplitFile load each
// dictionary once and reuse it.
//
// # Thread Safety
//
// Splitter is safe for concurrent use. The cost model is immutable once
// loaded; concurrent splits are bounded by WithPoolSize.
//
// # Dictionary Files
//
// A dictionary is a text file, optionally gzip-compressed, holding
// whitespace separated words ordered from most to least frequent. Files with
// the dictionary.SnapshotExt extension are read as binary snapshots.
package wordninja
