package buffer

// OffsetClampMode selects how out-of-range inputs are treated by conversions.
type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromOffset converts a rune offset to a row/col position.
func (d Doc) PosFromOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, d.Len(), mode)
	if !ok {
		return Pos{}, false
	}
	line := d.LineAt(off)
	return Pos{Row: line.Row, Col: off - line.From}, true
}

// OffsetFromPos converts a row/col position to a rune offset.
func (d Doc) OffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	pos, ok := d.normalizePosForMode(pos, mode)
	if !ok {
		return 0, false
	}
	return d.Line(pos.Row).From + pos.Col, true
}

// ClampPos clamps pos into the document bounds.
func (d Doc) ClampPos(pos Pos) Pos {
	return ClampPos(pos, d.Lines(), d.lineLen)
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}

func (d Doc) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		clamped := d.ClampPos(pos)
		if clamped != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return d.ClampPos(pos), true
	default:
		return Pos{}, false
	}
}
