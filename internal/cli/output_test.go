package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/docket-run/docket/pkg/manifest"
)

func sampleStates() []manifest.State {
	return []manifest.State{
		{Name: "River Bridge", Department: "Transportation", Funded: true, Budget: 1500000},
		{Name: "School Upgrade", Department: "Education", Funded: false, Budget: 600000},
		{Name: "City Park", Department: "Urban Development", Funded: true, Budget: 500000, Completed: true},
	}
}

func TestWriteTextGolden(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, sampleStates())

	g := goldie.New(t)
	g.Assert(t, "run_text", buf.Bytes())
}

func TestWriteJSONGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleStates()))

	g := goldie.New(t)
	g.Assert(t, "run_json", buf.Bytes())
}
