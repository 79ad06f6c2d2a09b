package model

// Stats counts processed albums per Status for one run.
//
// The zero value is ready to use.
type Stats struct {
	counts map[Status]int
}

// Add increments the count for status.
func (s *Stats) Add(status Status) {
	if s.counts == nil {
		s.counts = make(map[Status]int, len(Statuses))
	}
	s.counts[status]++
}

// Count returns the count for status.
func (s Stats) Count(status Status) int {
	return s.counts[status]
}

// Updated returns the number of albums that received a rating, whether
// written back or only previewed.
func (s Stats) Updated() int {
	return s.counts[StatusSuccess] + s.counts[StatusPreview]
}

// Total returns the number of albums counted.
func (s Stats) Total() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// Clone returns an independent copy.
func (s Stats) Clone() Stats {
	c := Stats{counts: make(map[Status]int, len(s.counts))}
	for k, v := range s.counts {
		c.counts[k] = v
	}
	return c
}
