// Package topics holds the static topic catalog: the candidate pool
// the composer classifies and samples from. The catalog is keyed by
// topic ID; subjects group topics for probe caps and review selection.
package topics

import "fmt"

// Subject identifies a curriculum subject.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectReading Subject = "reading"
	SubjectScience Subject = "science"
)

// AllSubjects returns the subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectMath, SubjectReading, SubjectScience}
}

// Topic is a single testable curriculum topic.
type Topic struct {
	ID        string
	Name      string
	SubjectID Subject
	Grade     int
}

var catalog = []Topic{
	{ID: "counting", Name: "Counting & Number Sense", SubjectID: SubjectMath, Grade: 0},
	{ID: "addition", Name: "Addition", SubjectID: SubjectMath, Grade: 1},
	{ID: "subtraction", Name: "Subtraction", SubjectID: SubjectMath, Grade: 1},
	{ID: "multiplication", Name: "Multiplication", SubjectID: SubjectMath, Grade: 3},
	{ID: "division", Name: "Division", SubjectID: SubjectMath, Grade: 3},
	{ID: "fractions", Name: "Fractions", SubjectID: SubjectMath, Grade: 3},
	{ID: "decimals", Name: "Decimals", SubjectID: SubjectMath, Grade: 4},
	{ID: "geometry", Name: "Geometry", SubjectID: SubjectMath, Grade: 4},
	{ID: "measurement", Name: "Measurement", SubjectID: SubjectMath, Grade: 2},
	{ID: "word-problems", Name: "Word Problems", SubjectID: SubjectMath, Grade: 4},
	{ID: "phonics", Name: "Phonics", SubjectID: SubjectReading, Grade: 0},
	{ID: "sight-words", Name: "Sight Words", SubjectID: SubjectReading, Grade: 1},
	{ID: "vocabulary", Name: "Vocabulary", SubjectID: SubjectReading, Grade: 2},
	{ID: "comprehension", Name: "Reading Comprehension", SubjectID: SubjectReading, Grade: 3},
	{ID: "grammar", Name: "Grammar", SubjectID: SubjectReading, Grade: 4},
	{ID: "life-science", Name: "Life Science", SubjectID: SubjectScience, Grade: 2},
	{ID: "earth-science", Name: "Earth Science", SubjectID: SubjectScience, Grade: 3},
	{ID: "physical-science", Name: "Physical Science", SubjectID: SubjectScience, Grade: 4},
}

var byID = func() map[string]Topic {
	m := make(map[string]Topic, len(catalog))
	for _, t := range catalog {
		m[t.ID] = t
	}
	return m
}()

// Get returns the topic with the given ID.
func Get(id string) (Topic, error) {
	t, ok := byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("unknown topic %q", id)
	}
	return t, nil
}

// All returns every topic in the catalog.
func All() []Topic {
	out := make([]Topic, len(catalog))
	copy(out, catalog)
	return out
}

// BySubject returns the topics for one subject, catalog order.
func BySubject(subject Subject) []Topic {
	var out []Topic
	for _, t := range catalog {
		if t.SubjectID == subject {
			out = append(out, t)
		}
	}
	return out
}

// IDsBySubject returns just the topic IDs for one subject.
func IDsBySubject(subject Subject) []string {
	var out []string
	for _, t := range catalog {
		if t.SubjectID == subject {
			out = append(out, t.ID)
		}
	}
	return out
}

// SubjectOf returns the subject for a topic ID, or empty when unknown.
func SubjectOf(id string) Subject {
	if t, ok := byID[id]; ok {
		return t.SubjectID
	}
	return ""
}
