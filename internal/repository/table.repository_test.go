package repository

import (
	"os"
	"path/filepath"
	"strategyalign/internal/domain"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestTableRepository_Read(t *testing.T) {
	h := NewTableRepository()

	t.Run("types cells", func(t *testing.T) {
		in := "\ufeffSymbol , Value,Score,Flag,Note\n" +
			"AAA,Y,1.5,TRUE,\n" +
			"NYSE:BBB,n/a,NaN,false,hello world\n" +
			",,,,\n" +
			"CCC,yes\n" +
			"DDD,N,2,TRUE,x,extra\n"

		table, err := h.Read(strings.NewReader(in))
		require.NoError(t, err)

		expected := domain.Table{
			Columns: []string{"Symbol", "Value", "Score", "Flag", "Note"},
			Rows: [][]domain.RawValue{
				{domain.TextValue("AAA"), domain.TextValue("Y"), domain.NumberValue(1.5), domain.BoolValue(true), domain.Missing()},
				{domain.TextValue("NYSE:BBB"), domain.Missing(), domain.Missing(), domain.BoolValue(false), domain.TextValue("hello world")},
				{domain.TextValue("CCC"), domain.TextValue("yes")},
				{domain.TextValue("DDD"), domain.TextValue("N"), domain.NumberValue(2), domain.BoolValue(true), domain.TextValue("x")},
			},
		}
		require.Equal(t, "", cmp.Diff(expected, *table, cmpopts.IgnoreFields(domain.RawValue{}, "Source")))
		require.True(t, table.Cell(2, 3).IsMissing())
	})

	t.Run("quoted numbers with commas", func(t *testing.T) {
		table, err := h.Read(strings.NewReader("Ticker,Shares\nAAA,\"1,200\"\n"))
		require.NoError(t, err)
		require.Equal(t, domain.TextValue("1,200"), table.Rows[0][1])
	})

	t.Run("numeric looking tickers keep their text", func(t *testing.T) {
		table, err := h.Read(strings.NewReader("Symbol,Weight\n0700,10\nAAPL,5\n"))
		require.NoError(t, err)
		require.Equal(t, domain.KindNumber, table.Rows[0][0].Kind)
		require.Equal(t, 700.0, table.Rows[0][0].Number)
		require.Equal(t, "0700", table.Rows[0][0].Literal())
		require.Equal(t, "10", table.Rows[0][1].Literal())
		require.Equal(t, "AAPL", table.Rows[1][0].Literal())
	})

	t.Run("empty input", func(t *testing.T) {
		table, err := h.Read(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, 0, table.Len())
		require.Empty(t, table.Columns)
	})

	t.Run("header only", func(t *testing.T) {
		table, err := h.Read(strings.NewReader("Symbol,Weight\n"))
		require.NoError(t, err)
		require.Equal(t, []string{"Symbol", "Weight"}, table.Columns)
		require.Equal(t, 0, table.Len())
	})
}

func TestTableRepository_ReadFile(t *testing.T) {
	h := NewTableRepository()

	path := filepath.Join(t.TempDir(), "portfolio.csv")
	require.NoError(t, os.WriteFile(path, []byte("Symbol,Weight\nAAA,10\n"), 0o644))

	table, err := h.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, domain.KindNumber, table.Rows[0][1].Kind)
	require.Equal(t, 10.0, table.Rows[0][1].Number)

	_, err = h.ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
