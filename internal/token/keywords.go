package token

// keywords maps reserved words to their token kinds. 'true', 'false', and
// 'null' are absent: the scanner maps them to Literal tokens directly.
var keywords = map[string]Kind{
	"abstract":   KwAbstract,
	"as":         KwAs,
	"base":       KwBase,
	"bool":       KwBool,
	"break":      KwBreak,
	"byte":       KwByte,
	"case":       KwCase,
	"catch":      KwCatch,
	"char":       KwChar,
	"checked":    KwChecked,
	"class":      KwClass,
	"const":      KwConst,
	"continue":   KwContinue,
	"decimal":    KwDecimal,
	"default":    KwDefault,
	"delegate":   KwDelegate,
	"do":         KwDo,
	"double":     KwDouble,
	"else":       KwElse,
	"enum":       KwEnum,
	"event":      KwEvent,
	"explicit":   KwExplicit,
	"extern":     KwExtern,
	"finally":    KwFinally,
	"fixed":      KwFixed,
	"float":      KwFloat,
	"for":        KwFor,
	"foreach":    KwForeach,
	"goto":       KwGoto,
	"if":         KwIf,
	"implicit":   KwImplicit,
	"in":         KwIn,
	"int":        KwInt,
	"interface":  KwInterface,
	"internal":   KwInternal,
	"is":         KwIs,
	"lock":       KwLock,
	"long":       KwLong,
	"namespace":  KwNamespace,
	"new":        KwNew,
	"object":     KwObject,
	"operator":   KwOperator,
	"out":        KwOut,
	"override":   KwOverride,
	"params":     KwParams,
	"partial":    KwPartial,
	"private":    KwPrivate,
	"protected":  KwProtected,
	"public":     KwPublic,
	"readonly":   KwReadonly,
	"ref":        KwRef,
	"return":     KwReturn,
	"sbyte":      KwSbyte,
	"sealed":     KwSealed,
	"short":      KwShort,
	"sizeof":     KwSizeof,
	"stackalloc": KwStackalloc,
	"static":     KwStatic,
	"string":     KwString,
	"struct":     KwStruct,
	"switch":     KwSwitch,
	"this":       KwThis,
	"throw":      KwThrow,
	"try":        KwTry,
	"typeof":     KwTypeof,
	"uint":       KwUint,
	"ulong":      KwUlong,
	"unchecked":  KwUnchecked,
	"unsafe":     KwUnsafe,
	"ushort":     KwUshort,
	"using":      KwUsing,
	"virtual":    KwVirtual,
	"void":       KwVoid,
	"volatile":   KwVolatile,
	"while":      KwWhile,
}

// keywordNames is the reverse of keywords, built once at init.
var keywordNames = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for text, kind := range keywords {
		m[kind] = text
	}
	return m
}()

// LookupKeyword returns the keyword kind for ident. Keywords are
// case-sensitive; only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
