package ecudump

type Analysis struct {
	// Temperatures are the decoded unit temperatures in report order.
	Temperatures []float64

	Average float64
	Min     float64
	Max     float64

	Warning   bool
	Critical  bool
	Emergency bool
}

func (a *Analysis) HasTemperatures() bool {
	return len(a.Temperatures) > 0
}

func Analyze(r *Report, config *Config) *Analysis {
	a := &Analysis{}
	for _, u := range r.Units {
		f, ok := u.Field(FieldTemperature)
		if !ok || !f.Valid {
			continue
		}
		a.Temperatures = append(a.Temperatures, float64(f.Float))
	}

	if a.HasTemperatures() {
		sum := 0.0
		a.Min = a.Temperatures[0]
		a.Max = a.Temperatures[0]
		for _, t := range a.Temperatures {
			sum += t
			// NaN never compares, so it only becomes an extreme when first
			if t < a.Min {
				a.Min = t
			}
			if t > a.Max {
				a.Max = t
			}
		}
		a.Average = sum / float64(len(a.Temperatures))
		a.Warning = a.Max > config.WarningTemperature
		a.Critical = a.Max > config.CriticalTemperature
	}

	if brake, ok := r.Unit(BrakeSchema.Name); ok {
		for _, id := range []FieldID{FieldEmergencyState, FieldEmergencyFlag} {
			if f, ok := brake.Field(id); ok && f.Nonzero() {
				a.Emergency = true
			}
		}
	}
	return a
}
