package services

import "strings"

// Segments is the result of segmenting a document: section text keyed by type,
// with insertion order preserved (first occurrence of each heading type).
type Segments struct {
	order []SectionType
	text  map[SectionType]string
}

func newSegments() *Segments {
	return &Segments{text: make(map[SectionType]string)}
}

// set stores text for a section. A section seen before keeps its original
// position in the order but has its text replaced (last contiguous run wins).
func (s *Segments) set(section SectionType, text string) {
	if _, ok := s.text[section]; !ok {
		s.order = append(s.order, section)
	}
	s.text[section] = text
}

// Order returns the detected section types in first-occurrence order.
func (s *Segments) Order() []SectionType {
	return s.order
}

// Text returns the accumulated text for a section.
func (s *Segments) Text(section SectionType) (string, bool) {
	text, ok := s.text[section]
	return text, ok
}

// Len returns the number of detected sections.
func (s *Segments) Len() int {
	return len(s.order)
}

// SegmentDocument walks the document line by line and splits it into
// contiguous per-section blocks using ClassifySection. Lines before the first
// recognized heading are discarded. When the same heading type reappears later
// in the document, the new block replaces the earlier one. Single forward
// pass, no backtracking.
func SegmentDocument(document string) *Segments {
	segments := newSegments()

	var current SectionType
	var hasCurrent bool
	var buffer []string

	flush := func() {
		if hasCurrent {
			segments.set(current, strings.Join(buffer, "\n"))
		}
		buffer = buffer[:0]
	}

	for _, line := range strings.Split(document, "\n") {
		if section, ok := ClassifySection(line); ok && (!hasCurrent || section != current) {
			flush()
			current = section
			hasCurrent = true
		}
		if hasCurrent {
			buffer = append(buffer, line)
		}
	}
	flush()

	return segments
}
