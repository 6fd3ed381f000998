package emit

import (
	"fmt"

	"github.com/ctron/ts-bindgen/ir"
)

// emitEnum renders t (Kind == Enum) as an untagged serde enum; members
// with an explicit literal value receive a discriminant, per spec.md
// §4.4.4 "Enum".
func (e *Emitter) emitEnum(w *Writer, t *ir.Type) {
	name := rustName(t.Name)
	w.Writefmtln("#[derive(Clone, Serialize, Deserialize)]")
	w.Writefmtln("#[serde(untagged)]")
	w.Block(fmt.Sprintf("%s enum %s", visibility(t.Exported), name), func() {
		for _, m := range t.Info.EnumMembers {
			caseName := rustNameOf(m.ID)
			if m.Literal != nil {
				w.Writefmtln("%s = %s,", caseName, literalValue(*m.Literal))
			} else {
				w.Writefmtln("%s,", caseName)
			}
		}
	})
}

func literalValue(l ir.Literal) string {
	switch {
	case l.IsString:
		return quoteRust(l.Str)
	case l.IsNumber:
		return floatLiteral(l.Num)
	case l.IsBool:
		return boolLiteral(l.Bool)
	default:
		return "0"
	}
}
