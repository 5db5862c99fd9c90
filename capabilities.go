package main

import "errors"

// Feature is one optional capability and whether this build/runtime has it
type Feature struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Hint      string `json:"hint,omitempty"`
}

// Capabilities reports which optional features are usable. Export formats
// and the embedded window depend on build tags; insights depend on an API key.
type Capabilities struct {
	PDF        bool `json:"pdf"`
	Slides     bool `json:"slides"`
	EmbeddedUI bool `json:"embedded_ui"`
	AIInsights bool `json:"ai_insights"`

	Formats map[string]bool   `json:"formats"` // Export format -> can be produced
	Hints   map[string]string `json:"hints,omitempty"`
}

// DetectCapabilities checks build tags and the insights key
func DetectCapabilities(insights *InsightsGenerator) Capabilities {
	c := Capabilities{
		PDF:        pdfAvailable,
		Slides:     slidesAvailable,
		EmbeddedUI: embeddedUIAvailable,
		AIInsights: insights != nil && insights.Available(),
		Formats:    make(map[string]bool, len(AllFormats)),
		Hints:      make(map[string]string),
	}
	for _, format := range AllFormats {
		c.Formats[format] = c.FormatAvailable(format)
	}
	if !c.PDF {
		c.Hints["pdf"] = "built with -tags nopdf; rebuild without it for PDF export"
	}
	if !c.Slides {
		c.Hints["slides"] = "built with -tags noslides; rebuild without it for slide decks"
	}
	if !c.EmbeddedUI {
		c.Hints["embedded_ui"] = "console build; use -web for the browser UI"
	}
	if !c.AIInsights {
		keyEnv := defaultAPIKeyEnv
		if insights != nil {
			keyEnv = insights.keyEnv
		}
		if insights != nil && !insights.enabled {
			c.Hints["ai_insights"] = "disabled in config (insights.enabled)"
		} else {
			c.Hints["ai_insights"] = "set " + keyEnv + " (environment or .env) to enable AI insights"
		}
	}
	return c
}

// Features lists the capabilities in display order
func (c Capabilities) Features() []Feature {
	return []Feature{
		{Name: "pdf", Available: c.PDF, Hint: c.Hints["pdf"]},
		{Name: "slides", Available: c.Slides, Hint: c.Hints["slides"]},
		{Name: "embedded_ui", Available: c.EmbeddedUI, Hint: c.Hints["embedded_ui"]},
		{Name: "ai_insights", Available: c.AIInsights, Hint: c.Hints["ai_insights"]},
	}
}

// FormatAvailable reports whether an export format can be produced
func (c Capabilities) FormatAvailable(format string) bool {
	switch format {
	case FormatPDF:
		return c.PDF
	case FormatSlides:
		return c.Slides
	default:
		return true
	}
}

func isUnavailable(err error) bool {
	return errors.Is(err, ErrCapabilityUnavailable)
}
