package state

// Emphasis is the visual weight of an element.
type Emphasis int

const (
	EmphasisBase Emphasis = iota
	EmphasisHover
	EmphasisPreview
	EmphasisActive
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisHover:
		return "hover"
	case EmphasisPreview:
		return "preview"
	case EmphasisActive:
		return "active"
	}
	return "base"
}

// LabelEmphasis is the weight of a band's name. A band counts as active
// when it is open itself or when one of its segments is hovered or active.
// Active wins over hover.
func LabelEmphasis(s State, bandID string) Emphasis {
	switch {
	case bandID == "":
		return EmphasisBase
	case s.ActiveBand == bandID, s.HoveredSegmentParent == bandID, s.ActiveSegmentParent == bandID:
		return EmphasisActive
	case s.HoveredBand == bandID:
		return EmphasisHover
	}
	return EmphasisBase
}

// BandEmphasis is the weight of a band's fill.
func BandEmphasis(s State, bandID string) Emphasis {
	switch {
	case bandID == "":
		return EmphasisBase
	case s.ActiveBand == bandID:
		return EmphasisActive
	case s.HoveredBand == bandID:
		return EmphasisHover
	}
	return EmphasisBase
}

// SegmentEmphasis is the weight of a segment's border.
func SegmentEmphasis(s State, segID string) Emphasis {
	switch {
	case segID == "":
		return EmphasisBase
	case s.ActiveSegment == segID:
		return EmphasisActive
	case s.PreviewSegment == segID:
		return EmphasisPreview
	case s.HoveredSegment == segID:
		return EmphasisHover
	}
	return EmphasisBase
}

// MarkEmphasis is the weight of an author or text mark.
func MarkEmphasis(s State, k Kind, id string) Emphasis {
	switch {
	case s.ActiveMark.Is(k, id):
		return EmphasisActive
	case s.HoveredMark.Is(k, id):
		return EmphasisHover
	}
	return EmphasisBase
}
