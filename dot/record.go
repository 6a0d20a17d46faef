package dot

import (
	"strings"

	"github.com/dotlayout/dotlayout/shape"
)

// recordParser walks a record label's mini-grammar `{ a | <p> b | { c | d } }`
// one rune at a time: '{' opens a nested row, '|' separates cells, '}'
// closes the current row, and any other rune accumulates into the
// current cell's label text.
type recordParser struct {
	input []rune
	pos   int
}

type recordFrame struct {
	label strings.Builder
	cells []shape.RecordDef
}

// splitLabelToTextAndPort splits a label such as "<f0> XXX" into its port
// ("f0") and text ("XXX") parts; a label with no leading "<port>" prefix
// has no port.
func splitLabelToTextAndPort(s string) (string, string) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<") {
		if idx := strings.IndexByte(s, '>'); idx >= 0 {
			port := s[1:idx]
			return strings.TrimSpace(s[idx+1:]), port
		}
	}
	return s, ""
}

func (f *recordFrame) finalizeLabel() {
	text := f.label.String()
	if strings.TrimSpace(text) != "" {
		txt, port := splitLabelToTextAndPort(text)
		f.cells = append(f.cells, shape.NewRecordPort(txt, port))
		f.label.Reset()
	}
}

func (f *recordFrame) finalizeRecord() shape.RecordDef {
	f.finalizeLabel()
	if len(f.cells) == 0 {
		return shape.NewRecordText("")
	}
	return shape.NewRecordArray(f.cells)
}

func (p *recordParser) parse() shape.RecordDef {
	frame := &recordFrame{}
	for {
		if p.pos >= len(p.input) {
			return frame.finalizeRecord()
		}
		ch := p.input[p.pos]
		switch ch {
		case '{':
			p.pos++
			frame.finalizeLabel()
			frame.cells = append(frame.cells, p.parse())
		case '|':
			p.pos++
			frame.finalizeLabel()
		case '}':
			p.pos++
			frame.finalizeLabel()
			return frame.finalizeRecord()
		default:
			p.pos++
			frame.label.WriteRune(ch)
		}
	}
}

// ParseRecordString parses a DOT record-shape label into a shape.RecordDef.
func ParseRecordString(label string) shape.RecordDef {
	p := &recordParser{input: []rune(label)}
	return p.parse()
}
