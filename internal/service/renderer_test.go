package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"lionreport/internal/model"
)

func TestPDFRenderer_Render(t *testing.T) {
	r := NewPDFRenderer()

	summary := model.Summary{
		LastWeek:      "Shipped the billing migration.",
		Issues:        "Flaky CI on the integration suite.",
		Opportunities: "Automate the release notes.",
		NextWeek:      "Start the reporting dashboard.",
	}

	pdf, err := r.Render(summary)
	assert.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestPDFRenderer_Render_Deterministic(t *testing.T) {
	r := NewPDFRenderer()

	summary := model.Summary{
		LastWeek:      "Same input",
		Issues:        "Same input",
		Opportunities: "Same input",
		NextWeek:      "Same input",
	}

	first, err := r.Render(summary)
	assert.NoError(t, err)

	// Repeated renders guard against ordering drift in the embedded
	// resource dictionaries, not just the pinned metadata dates.
	for i := 0; i < 5; i++ {
		next, err := r.Render(summary)
		assert.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestPDFRenderer_Render_EmptySections(t *testing.T) {
	r := NewPDFRenderer()

	pdf, err := r.Render(model.Summary{})
	assert.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
