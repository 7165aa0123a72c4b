package l1_service

import (
	"strategyalign/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSymbol(t *testing.T) {
	suffixes := domain.DefaultEngineConfig().ExchangeSuffixes

	t.Run("trims and uppercases", func(t *testing.T) {
		require.Equal(t, "AAPL", NormalizeSymbol("  aapl ", domain.SymbolProfile_Plain, suffixes))
	})

	t.Run("strips exchange prefix", func(t *testing.T) {
		require.Equal(t, "ZZZ", NormalizeSymbol("XTSE:ZZZ", domain.SymbolProfile_ColonPrefix, suffixes))
		require.Equal(t, "ZZZ", NormalizeSymbol("xtse: zzz", domain.SymbolProfile_ColonPrefix, suffixes))
	})

	t.Run("plain profile keeps prefix", func(t *testing.T) {
		require.Equal(t, "XTSE:ZZZ", NormalizeSymbol("XTSE:ZZZ", domain.SymbolProfile_Plain, suffixes))
	})

	t.Run("strips suffix only in suffix profiles", func(t *testing.T) {
		require.Equal(t, "RY", NormalizeSymbol("ry.to", domain.SymbolProfile_Suffix, suffixes))
		require.Equal(t, "RY.TO", NormalizeSymbol("ry.to", domain.SymbolProfile_ColonPrefix, suffixes))
		require.Equal(t, "RY", NormalizeSymbol("TSX:RY.TO", domain.SymbolProfile_Full, suffixes))
	})

	t.Run("never strips to empty", func(t *testing.T) {
		require.Equal(t, ".TO", NormalizeSymbol(".to", domain.SymbolProfile_Suffix, suffixes))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"", " ", "aapl", "XTSE:ZZZ", "A:B:C", "a:b.to", "ABC.TO.TO", "X.O.O", ".TO", "brk.b", "  nyse : ibm.us ",
		}
		profiles := []domain.SymbolProfile{
			domain.SymbolProfile_Plain,
			domain.SymbolProfile_ColonPrefix,
			domain.SymbolProfile_Suffix,
			domain.SymbolProfile_Full,
		}
		for _, p := range profiles {
			for _, in := range inputs {
				once := NormalizeSymbol(in, p, suffixes)
				require.Equal(t, once, NormalizeSymbol(once, p, suffixes), "profile %s input %q", p, in)
			}
		}
	})

	t.Run("normalizes non-string values", func(t *testing.T) {
		s := NewSymbolService(domain.SymbolProfile_ColonPrefix, suffixes)
		require.Equal(t, "7203", s.Normalize(domain.NumberValue(7203).Literal()))
		require.Equal(t, "0700", s.Normalize(domain.ParseCell(" 0700 ").Literal()))
		require.Equal(t, "", s.Normalize(domain.Missing().Literal()))
	})
}
