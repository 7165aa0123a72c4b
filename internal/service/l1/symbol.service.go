package l1_service

import (
	"strategyalign/internal/domain"
	"strings"
)

type SymbolService interface {
	Normalize(raw string) string
}

type symbolServiceHandler struct {
	Profile  domain.SymbolProfile
	Suffixes []string
}

func NewSymbolService(profile domain.SymbolProfile, suffixes []string) SymbolService {
	normalized := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			normalized = append(normalized, s)
		}
	}
	return symbolServiceHandler{
		Profile:  profile,
		Suffixes: normalized,
	}
}

func (h symbolServiceHandler) Normalize(raw string) string {
	return NormalizeSymbol(raw, h.Profile, h.Suffixes)
}

// NormalizeSymbol canonicalises a ticker so portfolio and reference
// identifiers compare equal. It never fails and
// NormalizeSymbol(NormalizeSymbol(x)) == NormalizeSymbol(x).
func NormalizeSymbol(raw string, profile domain.SymbolProfile, suffixes []string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))

	if profile == domain.SymbolProfile_ColonPrefix || profile == domain.SymbolProfile_Full {
		s = stripExchangePrefix(s)
	}
	if profile == domain.SymbolProfile_Suffix || profile == domain.SymbolProfile_Full {
		s = stripExchangeSuffixes(s, suffixes)
	}

	return s
}

// XTSE:ZZZ -> ZZZ. splits on the last colon so repeated application is a
// no-op
func stripExchangePrefix(s string) string {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return s
	}
	return strings.TrimSpace(s[i+1:])
}

func stripExchangeSuffixes(s string, suffixes []string) string {
	for {
		stripped := false
		for _, suffix := range suffixes {
			if len(s) > len(suffix) && strings.HasSuffix(s, suffix) {
				s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
				stripped = true
				break
			}
		}
		if !stripped || s == "" {
			return s
		}
	}
}
