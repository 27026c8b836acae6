package jstext

import "strings"

// LocateArray finds the first array literal anchored by key: the first
// occurrence of key, followed by the next ':' and then the next '['.
// A missing key, colon or bracket is an absent result, not an error;
// the caller decides whether a missing section is fatal. An extraction
// failure at a located bracket is returned as an error.
func LocateArray(text, key string) (string, bool, error) {
	keyAt := strings.Index(text, key)
	if keyAt < 0 {
		return "", false, nil
	}
	colon := strings.IndexByte(text[keyAt:], ':')
	if colon < 0 {
		return "", false, nil
	}
	bracket := strings.IndexByte(text[keyAt+colon:], '[')
	if bracket < 0 {
		return "", false, nil
	}

	literal, err := ExtractArray(text, keyAt+colon+bracket)
	if err != nil {
		return "", false, err
	}
	return literal, true, nil
}

// ArrayScanner yields successive anchored array literals for a key that
// repeats within the same text, e.g. one data block per script section.
// It owns its resume offset: after a successful extraction the next scan
// starts just past the returned literal, and after a failed one it starts
// just past the offending key occurrence, so a malformed block can be
// skipped without aborting the whole scan. A scanner is restarted only by
// constructing a new one.
type ArrayScanner struct {
	text string
	key  string
	pos  int
}

func NewArrayScanner(text, key string) *ArrayScanner {
	return &ArrayScanner{text: text, key: key}
}

// Next returns the next anchored literal. ok reports whether an
// occurrence was found at all; when ok is true and err is non-nil the
// occurrence was malformed and calling Next again resumes past it.
func (s *ArrayScanner) Next() (literal string, ok bool, err error) {
	for s.pos < len(s.text) {
		rel := strings.Index(s.text[s.pos:], s.key)
		if rel < 0 {
			return "", false, nil
		}
		keyAt := s.pos + rel

		colon := strings.IndexByte(s.text[keyAt:], ':')
		if colon < 0 {
			return "", false, nil
		}
		bracket := strings.IndexByte(s.text[keyAt+colon:], '[')
		if bracket < 0 {
			return "", false, nil
		}

		literal, err := ExtractArray(s.text, keyAt+colon+bracket)
		if err != nil {
			s.pos = keyAt + len(s.key)
			return "", true, err
		}
		s.pos = keyAt + colon + bracket + len(literal)
		return literal, true, nil
	}
	return "", false, nil
}
