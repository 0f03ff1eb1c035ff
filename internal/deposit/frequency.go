package deposit

// Frequency is how often interest is capitalized into the principal.
type Frequency string

// Supported compounding frequencies
const (
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Annually  Frequency = "annually"
)

var periodsPerYear = map[Frequency]int{
	Monthly:   12,
	Quarterly: 4,
	Annually:  1,
}

// Frequencies returns the supported frequencies, most frequent first.
func Frequencies() []Frequency {
	return []Frequency{Monthly, Quarterly, Annually}
}

// PeriodsPerYear returns the number of compounding periods in a year.
func (f Frequency) PeriodsPerYear() (int, bool) {
	n, ok := periodsPerYear[f]
	return n, ok
}

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	_, ok := periodsPerYear[f]
	return ok
}

func (f Frequency) String() string {
	return string(f)
}
