package ecudump

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	NoDataMessage = "No CRDT state data found in input"

	bannerWidth = 60
	labelWidth  = 16
	unavailable = "N/A"
)

var displayLabels = map[FieldID]string{
	FieldTemperature:    "Temperature",
	FieldErrorCount:     "Error Count",
	FieldConfigTime:     "Config Time",
	FieldCANBuffer:      "CAN Buffer",
	FieldEmergencyState: "Emergency",
	FieldEmergencyFlag:  "Emergency Flag",
	FieldHealthScore:    "Health Score",
	FieldRoutingCount:   "Routing Count",
}

type Renderer struct {
	Config *Config

	printer *message.Printer
}

func NewRenderer(config *Config) *Renderer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Renderer{
		Config:  config,
		printer: message.NewPrinter(language.English),
	}
}

// Render formats the whole report. A nil report means no dump section was
// found. The result always ends with a newline.
func (rd *Renderer) Render(r *Report) string {
	if r == nil {
		return NoDataMessage + "\n"
	}

	var lines []string
	add := func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	rule := strings.Repeat("=", bannerWidth)

	add(rule)
	add("CRDT STATE ANALYSIS")
	add(rule)

	for _, u := range r.Units {
		header := u.Schema.Header()
		add("\n%s:", header)
		add(strings.Repeat("-", len(header)+1))
		for i := range u.Fields {
			f := &u.Fields[i]
			add("  %-*s%s [%s]", labelWidth, displayLabels[f.ID]+":", rd.formatValue(f), f.Raw)
		}
	}

	a := Analyze(r, rd.Config)
	add("\n" + rule)
	add("SYSTEM ANALYSIS")
	add(rule)
	if a.HasTemperatures() {
		add("Average Temperature: %s°C", formatFloat(a.Average, 0))
		add("Temperature Range:   %s°C - %s°C", formatFloat(a.Min, 0), formatFloat(a.Max, 0))
		if a.Warning {
			add("⚠️  WARNING: High temperature detected!")
		}
		if a.Critical {
			add("🚨 CRITICAL: Overheating condition!")
		}
	}
	if a.Emergency {
		add("🚨 EMERGENCY: Emergency braking system active!")
	} else {
		add("✅ NORMAL: No emergency conditions detected")
	}

	return strings.Join(lines, "\n") + "\n"
}

func (rd *Renderer) formatValue(f *Field) string {
	if !f.Valid {
		return unavailable
	}
	switch f.ID {
	case FieldTemperature:
		c := float64(f.Float)
		return fmt.Sprintf("%s°C (%s°F)", formatFloat(c, 6), formatFloat(celsiusToFahrenheit(c), 6))
	case FieldEmergencyState:
		if f.Uint.Sign() != 0 {
			return "ACTIVE"
		}
		return "INACTIVE"
	case FieldEmergencyFlag:
		if f.Uint.Sign() != 0 {
			return "SET"
		}
		return "CLEAR"
	}
	return rd.formatUint(f.Uint)
}

func (rd *Renderer) formatUint(v *big.Int) string {
	if v.IsUint64() {
		return rd.printer.Sprintf("%d", v.Uint64())
	}
	return groupThousands(v.String())
}

// groupThousands inserts a comma every three digits of a decimal string.
func groupThousands(s string) string {
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// formatFloat renders v with two decimals, right-aligned to width. Non-finite
// values use the lower-case nan/inf spellings.
func formatFloat(v float64, width int) string {
	var s string
	switch {
	case math.IsNaN(v):
		s = "nan"
	case math.IsInf(v, 1):
		s = "inf"
	case math.IsInf(v, -1):
		s = "-inf"
	default:
		s = fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%*s", width, s)
}

func celsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}
