package ordinals

import (
	"testing"

	"github.com/sat20-labs/ordinals/indexer/subsidy"
	"github.com/stretchr/testify/require"
)

var embedded = subsidy.NewEmbeddedProvider()

func loadTable(t *testing.T) *subsidy.Table {
	t.Helper()
	table, err := embedded.Table()
	require.NoError(t, err)
	return table
}
