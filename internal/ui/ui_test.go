package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	assert.Equal(t, "5%", Percent(5, 10))
	assert.Equal(t, "100%", Percent(100, 10))
	assert.Equal(t, "yes", Bool(true))
	assert.Equal(t, "no", Bool(false))
}

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	PrintTable([][]string{
		{"KIND", "ID", "NAME"},
		{"employees", "7", "Jane Doe"},
	}, &buf)

	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "Jane Doe")

	buf.Reset()

	PrintKeyValues([][]string{{"Valid", "yes"}}, &buf)
	assert.Contains(t, buf.String(), "Valid")
}
