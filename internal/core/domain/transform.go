package domain

// Transform derives the radio-mix flag and keeps only non-explicit
// tracks above the popularity threshold. A nil duration yields a nil
// RadioMix (the comparison is indeterminate, mirroring nullable-float
// semantics); a nil popularity fails the threshold test and the row is
// dropped.
func Transform(rows []Track, maxRadioSec float64, minPopularity int64) []Track {
	out := make([]Track, 0, len(rows))
	for _, r := range rows {
		if r.DurationSec != nil {
			mix := *r.DurationSec <= maxRadioSec
			r.RadioMix = &mix
		}
		if r.Explicit {
			continue
		}
		if r.Popularity == nil || *r.Popularity <= minPopularity {
			continue
		}
		out = append(out, r)
	}
	return out
}
