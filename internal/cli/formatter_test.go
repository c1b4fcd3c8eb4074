package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/mdu/internal/cli"
	"github.com/idelchi/mdu/internal/mdu"
)

func TestPrintTable_SkipsUnreachableRoots(t *testing.T) {
	t.Parallel()

	stats := &mdu.Stats{Roots: []mdu.Usage{
		{Label: "a", Blocks: 10},
		{Label: "gone", Skipped: true},
		{Label: "b", Blocks: 1234},
	}}

	var buf bytes.Buffer
	require.NoError(t, cli.PrintTable(stats, false, &buf))

	assert.Equal(t, "10    a\n1234  b\n", buf.String())
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	usage := mdu.Usage{Label: "x", Blocks: 4}

	assert.Equal(t, "4", cli.FormatSize(usage, false))
	assert.Equal(t, "2.0 KiB", cli.FormatSize(usage, true))
}
