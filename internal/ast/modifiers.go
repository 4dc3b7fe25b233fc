package ast

import (
	"strings"

	"cesium/internal/token"
)

// Modifiers is the set of declaration modifiers as a bit set.
type Modifiers uint32

const (
	ModAbstract Modifiers = 1 << iota
	ModExtern
	ModInternal
	ModNew
	ModOverride
	ModPrivate
	ModProtected
	ModPublic
	ModReadonly
	ModSealed
	ModStatic
	ModUnsafe
	ModVirtual
	ModVolatile
	ModPartial
	ModConst
)

var modifierTokens = map[token.Kind]Modifiers{
	token.KwAbstract:  ModAbstract,
	token.KwExtern:    ModExtern,
	token.KwInternal:  ModInternal,
	token.KwNew:       ModNew,
	token.KwOverride:  ModOverride,
	token.KwPrivate:   ModPrivate,
	token.KwProtected: ModProtected,
	token.KwPublic:    ModPublic,
	token.KwReadonly:  ModReadonly,
	token.KwSealed:    ModSealed,
	token.KwStatic:    ModStatic,
	token.KwUnsafe:    ModUnsafe,
	token.KwVirtual:   ModVirtual,
	token.KwVolatile:  ModVolatile,
	token.KwPartial:   ModPartial,
}

// ModifierFromToken maps a modifier keyword (or 'partial') to its bit.
func ModifierFromToken(k token.Kind) (Modifiers, bool) {
	m, ok := modifierTokens[k]
	return m, ok
}

// Has reports whether every bit of m is set.
func (ms Modifiers) Has(m Modifiers) bool { return ms&m == m }

var modifierNames = []struct {
	bit  Modifiers
	name string
}{
	{ModAbstract, "abstract"}, {ModExtern, "extern"}, {ModInternal, "internal"},
	{ModNew, "new"}, {ModOverride, "override"}, {ModPrivate, "private"},
	{ModProtected, "protected"}, {ModPublic, "public"}, {ModReadonly, "readonly"},
	{ModSealed, "sealed"}, {ModStatic, "static"}, {ModUnsafe, "unsafe"},
	{ModVirtual, "virtual"}, {ModVolatile, "volatile"}, {ModPartial, "partial"},
	{ModConst, "const"},
}

func (ms Modifiers) String() string {
	var parts []string
	for _, m := range modifierNames {
		if ms.Has(m.bit) {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(parts, " ")
}
