package domain

// ProblemFilter contains the conjunctive search filters for problems.
// Query matches title, description and tags case-insensitively as a
// substring; Difficulty matches exactly; Tags requires at least one
// overlapping tag. Only active problems are searched.
type ProblemFilter struct {
	Query      *string
	Difficulty *Difficulty
	Tags       []string
}

// IsEmpty reports whether no filter is set (search degrades to a plain
// active-problems listing).
func (f ProblemFilter) IsEmpty() bool {
	return f.Query == nil && f.Difficulty == nil && len(f.Tags) == 0
}
