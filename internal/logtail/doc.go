// Package logtail reads the tail of Pokedex's JSON log file for the activity
// overlay.
//
// Read keeps a ring buffer of the last maxLines non-blank lines, so memory is
// O(maxLines) regardless of file size, and returns them oldest first. Each
// line is decoded by Parse into an Entry: the zap keys ts, level and msg map
// to Time, Level and Message, every other key lands in Fields as a string.
// Lines that are not JSON are kept verbatim in Raw.
//
//	entries, err := logtail.Read(cfg.LogFile, 200)
//	for _, e := range entries {
//		fmt.Println(e.Time.Format(time.TimeOnly), e.Level, e.Message)
//	}
//
// A missing log file is not an error; it yields no entries.
package logtail
