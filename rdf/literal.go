package rdf

import (
	"fmt"
	"time"

	"github.com/cayleygraph/quad"
	xsdvoc "github.com/cayleygraph/quad/voc/xsd"
)

// XSDDate is the xsd:date datatype IRI, used for calendar dates without a
// time component (quad.Time maps to xsd:dateTime).
const XSDDate = quad.IRI(xsdvoc.NS + "date")

// XSDDateTime is the xsd:dateTime datatype IRI, for timestamps kept in
// their source string form.
const XSDDateTime = quad.IRI(xsdvoc.NS + "dateTime")

// ToLiteral coerces a native Go value to a quad literal term. Booleans,
// integers, floats, and times keep their native ordering and equality
// semantics; everything else serializes to its string form.
func ToLiteral(value any) quad.Value {
	switch v := value.(type) {
	case quad.Value:
		return v
	case bool:
		return quad.Bool(v)
	case int:
		return quad.Int(v)
	case int32:
		return quad.Int(v)
	case int64:
		return quad.Int(v)
	case float32:
		return quad.Float(v)
	case float64:
		return quad.Float(v)
	case string:
		return quad.String(v)
	case time.Time:
		return quad.Time(v)
	case fmt.Stringer:
		return quad.String(v.String())
	default:
		return quad.String(fmt.Sprint(v))
	}
}
