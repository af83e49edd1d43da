package service

import "strings"

// Part is one of the five fixed assessment sections.
type Part string

const (
	PartA Part = "A"
	PartB Part = "B"
	PartC Part = "C"
	PartD Part = "D"
	PartE Part = "E"
)

// PartOrder defines the progression A → B → C → D → E.
var PartOrder = []Part{PartA, PartB, PartC, PartD, PartE}

// RequiredParts is the finalize gate. Part E is deliberately NOT in the
// gate: the reference system treats E as a bonus section, so an attempt
// with A–D answered can be finalized with E untouched. Keep it that way.
var RequiredParts = []Part{PartA, PartB, PartC, PartD}

// ParseParam maps a lowercase route param ("a".."e") to a Part.
func ParseParam(id string) (Part, bool) {
	p := Part(strings.ToUpper(strings.TrimSpace(id)))
	for _, known := range PartOrder {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// Param is the route form of the part ("a".."e").
func (p Part) Param() string {
	return strings.ToLower(string(p))
}

// Next returns the successor part. After the last part there is no
// successor; done=true tells the caller to route to the finalize step.
func (p Part) Next() (next Part, done bool) {
	for i, known := range PartOrder {
		if p != known {
			continue
		}
		if i == len(PartOrder)-1 {
			return "", true
		}
		return PartOrder[i+1], false
	}
	return "", true
}

// IsRequired reports whether the part is in the finalize gate.
func (p Part) IsRequired() bool {
	for _, r := range RequiredParts {
		if p == r {
			return true
		}
	}
	return false
}
