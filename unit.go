package ecudump

import (
	"regexp"
	"strings"
)

type FieldKind int

const (
	KindUint FieldKind = iota
	KindFloat
)

type FieldID int

const (
	FieldTemperature FieldID = iota
	FieldErrorCount
	FieldConfigTime
	FieldCANBuffer
	FieldEmergencyState
	FieldEmergencyFlag
	FieldHealthScore
	FieldRoutingCount
)

type FieldSpec struct {
	ID FieldID
	// Label is the text preceding the value in the dump, without the colon.
	Label string
	Kind  FieldKind
}

var (
	temperature    = FieldSpec{FieldTemperature, "Temperature", KindFloat}
	errorCount     = FieldSpec{FieldErrorCount, "Error Count", KindUint}
	configTime     = FieldSpec{FieldConfigTime, "Config Time", KindUint}
	canBuffer      = FieldSpec{FieldCANBuffer, "CAN Buffer", KindUint}
	emergencyState = FieldSpec{FieldEmergencyState, "Emergency State", KindUint}
	emergencyFlag  = FieldSpec{FieldEmergencyFlag, "Emergency Flag", KindUint}
	healthScore    = FieldSpec{FieldHealthScore, "Health Score", KindUint}
	routingCount   = FieldSpec{FieldRoutingCount, "Routing Count", KindUint}
)

type Schema struct {
	Name   string
	Fields []FieldSpec

	pattern *regexp.Regexp
}

func newSchema(name string, fields ...FieldSpec) *Schema {
	s := &Schema{
		Name:   name,
		Fields: fields,
	}
	s.pattern = s.compile()
	return s
}

// Header is the record heading as it appears in the dump.
func (s *Schema) Header() string {
	return s.Name + " ECU"
}

// space matches any run of whitespace, including vertical tab, the ASCII
// separator controls and Unicode spaces.
const space = `[\s\v\x1c-\x1f\x85\p{Z}]*`

func (s *Schema) compile() *regexp.Regexp {
	var b strings.Builder
	b.WriteString(regexp.QuoteMeta(s.Header() + ":"))
	for _, f := range s.Fields {
		b.WriteString(space)
		b.WriteString(regexp.QuoteMeta(f.Label + ":"))
		b.WriteString(space)
		b.WriteString(`(0x[0-9A-Fa-f]+)`)
	}
	return regexp.MustCompile(b.String())
}

// Match returns the raw hex literal of every field, in schema order, from
// the first place in section where the whole record appears contiguously.
func (s *Schema) Match(section string) ([]string, bool) {
	m := s.pattern.FindStringSubmatch(section)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

var (
	EngineSchema   = newSchema("Engine", temperature, errorCount, configTime, canBuffer)
	BrakeSchema    = newSchema("Brake", temperature, errorCount, emergencyState, emergencyFlag)
	SteeringSchema = newSchema("Steering", temperature, errorCount, canBuffer)
	GatewaySchema  = newSchema("Gateway", temperature, healthScore, routingCount, canBuffer)
)

// Schemas lists every unit kind in report order.
var Schemas = []*Schema{
	EngineSchema,
	BrakeSchema,
	SteeringSchema,
	GatewaySchema,
}
