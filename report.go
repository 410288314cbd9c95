package ecudump

import (
	"math/big"

	"github.com/jd3nn1s/ecudump/hexval"
	log "github.com/sirupsen/logrus"
)

type Field struct {
	FieldSpec
	Raw string

	// Valid is false when Raw could not be decoded; Raw is kept either way.
	Valid bool
	Uint  *big.Int
	Float float32
}

// Nonzero reports whether a decoded uint field holds a nonzero value.
func (f *Field) Nonzero() bool {
	return f.Valid && f.Kind == KindUint && f.Uint.Sign() != 0
}

type Unit struct {
	Schema *Schema
	Fields []Field
}

func (u *Unit) Name() string {
	return u.Schema.Name
}

func (u *Unit) Field(id FieldID) (*Field, bool) {
	for i := range u.Fields {
		if u.Fields[i].ID == id {
			return &u.Fields[i], true
		}
	}
	return nil, false
}

// Report holds the units found in one dump section, in Schemas order.
type Report struct {
	Units []*Unit
}

func (r *Report) Unit(name string) (*Unit, bool) {
	for _, u := range r.Units {
		if u.Name() == name {
			return u, true
		}
	}
	return nil, false
}

// Parse locates the dump section in text and decodes every unit record in it.
// It returns false only when the section itself is missing.
func Parse(text string) (*Report, bool) {
	section, ok := FindSection(text)
	if !ok {
		log.Debug("no state dump section found")
		return nil, false
	}
	log.WithField("length", len(section)).Debug("located state dump section")

	r := &Report{}
	for _, s := range Schemas {
		raw, ok := s.Match(section)
		if !ok {
			log.WithField("unit", s.Name).Debug("unit record absent")
			continue
		}
		log.WithField("unit", s.Name).Debug("unit record matched")
		r.Units = append(r.Units, decodeUnit(s, raw))
	}
	return r, true
}

func decodeUnit(s *Schema, raw []string) *Unit {
	u := &Unit{
		Schema: s,
		Fields: make([]Field, len(s.Fields)),
	}
	for i, spec := range s.Fields {
		f := Field{
			FieldSpec: spec,
			Raw:       raw[i],
		}
		var err error
		switch spec.Kind {
		case KindFloat:
			f.Float, err = hexval.Float32(f.Raw)
		default:
			f.Uint, err = hexval.Uint(f.Raw)
		}
		if err != nil {
			log.WithField("unit", s.Name).
				WithField("field", spec.Label).
				WithField("raw", f.Raw).
				WithField("err", err).
				Warn("unable to decode field")
		} else {
			f.Valid = true
		}
		u.Fields[i] = f
	}
	return u
}
