package diag

import (
	"fmt"
	"sort"
	"strings"
)

// Code is a numeric diagnostic code in [0, 9999], printed as CSnnnn.
type Code uint16

const (
	// UseUppercaseL flags a lowercase 'l' integer suffix.
	UseUppercaseL Code = 78
	// NoTypesInInterfaces rejects nested types inside an interface.
	NoTypesInInterfaces Code = 524
	// NoFieldsInInterfaces rejects fields inside an interface.
	NoFieldsInInterfaces Code = 525
	// NoConstructorInInterface rejects constructors inside an interface.
	NoConstructorInInterface Code = 526
	// NoDestructorOutsideClass rejects destructors outside class types.
	NoDestructorOutsideClass Code = 575
	// RealConstantTooLarge flags a floating literal out of range.
	RealConstantTooLarge Code = 594
	// InvalidAttributeTarget flags an attribute target the declaration
	// does not admit.
	InvalidAttributeTarget Code = 657
	// UnknownAttributeTarget flags an unrecognized attribute target name.
	UnknownAttributeTarget Code = 658
	// ExpectedIdentifier reports a missing identifier.
	ExpectedIdentifier Code = 1001
	// ExpectedSemicolon reports a missing ';'.
	ExpectedSemicolon Code = 1002
	// SyntaxError reports a missing expected token.
	SyntaxError Code = 1003
	// DuplicateModifier reports a repeated declaration modifier.
	DuplicateModifier Code = 1004
	// InvalidEnumBase reports a non-integral enum base type.
	InvalidEnumBase Code = 1008
	// UnrecognizedEscape reports an unknown escape sequence.
	UnrecognizedEscape Code = 1009
	// NewlineInConstant reports a raw newline inside a literal.
	NewlineInConstant Code = 1010
	// EmptyCharacterLiteral reports ''.
	EmptyCharacterLiteral Code = 1011
	// CharacterLiteralTooLong reports a character literal with more than
	// one character.
	CharacterLiteralTooLong Code = 1012
	// InvalidNumber reports a malformed numeric literal.
	InvalidNumber Code = 1013
	// NamedArgumentExpected reports a positional attribute argument after
	// a named one.
	NamedArgumentExpected Code = 1016
	// IntegralConstantTooLarge reports an integer literal out of range.
	IntegralConstantTooLarge Code = 1021
	// PPDirectiveExpected reports an unknown preprocessor directive.
	PPDirectiveExpected Code = 1024
	// PPEndExpected reports trailing text after a directive.
	PPEndExpected Code = 1025
	// ExpectedRightParen reports a missing ')'.
	ExpectedRightParen Code = 1026
	// EndIfExpected reports an unterminated #if at end of buffer.
	EndIfExpected Code = 1027
	// UnexpectedPPDirective reports a directive in an invalid position.
	UnexpectedPPDirective Code = 1028
	// UserError is emitted by #error.
	UserError Code = 1029
	// UserWarning is emitted by #warning.
	UserWarning Code = 1030
	// PPTooLate reports #define/#undef after the first token.
	PPTooLate Code = 1032
	// UnterminatedComment reports an unclosed /* comment.
	UnterminatedComment Code = 1035
	// EndRegionExpected reports an unterminated #region at end of buffer.
	EndRegionExpected Code = 1038
	// UnterminatedStringLiteral reports an unclosed string literal.
	UnterminatedStringLiteral Code = 1039
	// PPNotFirstToken reports '#' that is not first on its line.
	PPNotFirstToken Code = 1040
	// ExpectedIdentGotKeyword reports a keyword where an identifier was
	// required.
	ExpectedIdentGotKeyword Code = 1041
	// UnexpectedCharacter reports a character no token can start with.
	UnexpectedCharacter Code = 1056
	// ExpectedRightBrace reports a missing '}'.
	ExpectedRightBrace Code = 1513
	// ExpectedLeftBrace reports a missing '{'.
	ExpectedLeftBrace Code = 1514
	// InvalidPPExpression reports a malformed #if/#elif expression.
	InvalidPPExpression Code = 1517
	// ExpectedTypeDeclaration reports a missing type declaration keyword.
	ExpectedTypeDeclaration Code = 1518
	// InvalidTokenInTypeDecl reports a token no member can start with.
	InvalidTokenInTypeDecl Code = 1519
	// InvalidLineDirective reports a malformed #line directive.
	InvalidLineDirective Code = 1576
	// MisplacedXmlComment reports an XML comment on no language element.
	MisplacedXmlComment Code = 1587
	// UnrecognizedPragma reports an unknown #pragma.
	UnrecognizedPragma Code = 1633
	// InvalidWarningPragma reports #pragma warning without
	// disable/restore.
	InvalidWarningPragma Code = 1634
	// MisplacedVerbatim reports '@' before a construct that cannot be
	// verbatim.
	MisplacedVerbatim Code = 1646
	// InvalidWarningCode reports a #pragma warning code that is not a
	// warning.
	InvalidWarningCode Code = 1691
)

type codeInfo struct {
	sev    Severity
	level  int // warning level; 0 for errors
	format string
}

var catalogEntries = []struct {
	code   Code
	sev    Severity
	level  int
	format string
}{
	{UseUppercaseL, SevWarning, 4, "The lowercase 'l' suffix is easily confused with the digit '1' -- use 'L' instead"},
	{NoTypesInInterfaces, SevError, 0, "'{0}': interfaces cannot declare types"},
	{NoFieldsInInterfaces, SevError, 0, "Interfaces cannot contain fields"},
	{NoConstructorInInterface, SevError, 0, "Interfaces cannot contain constructors"},
	{NoDestructorOutsideClass, SevError, 0, "'{0}': only class types can contain destructors"},
	{RealConstantTooLarge, SevError, 0, "Floating-point constant is outside the range of type '{0}'"},
	{InvalidAttributeTarget, SevWarning, 1, "'{0}' is not a valid attribute location for this declaration"},
	{UnknownAttributeTarget, SevWarning, 1, "'{0}' is not a recognized attribute location"},
	{ExpectedIdentifier, SevError, 0, "Identifier expected"},
	{ExpectedSemicolon, SevError, 0, "; expected"},
	{SyntaxError, SevError, 0, "Syntax error, '{0}' expected"},
	{DuplicateModifier, SevError, 0, "Duplicate '{0}' modifier"},
	{InvalidEnumBase, SevError, 0, "Type byte, sbyte, short, ushort, int, uint, long, or ulong expected"},
	{UnrecognizedEscape, SevError, 0, "Unrecognized escape sequence '\\{0}'"},
	{NewlineInConstant, SevError, 0, "Newline in constant"},
	{EmptyCharacterLiteral, SevError, 0, "Empty character literal"},
	{CharacterLiteralTooLong, SevError, 0, "Too many characters in character literal"},
	{InvalidNumber, SevError, 0, "Invalid number"},
	{NamedArgumentExpected, SevError, 0, "Named attribute argument expected"},
	{IntegralConstantTooLarge, SevError, 0, "Integral constant is too large"},
	{PPDirectiveExpected, SevError, 0, "Preprocessor directive expected"},
	{PPEndExpected, SevError, 0, "Single-line comment or end-of-line expected"},
	{ExpectedRightParen, SevError, 0, ") expected"},
	{EndIfExpected, SevError, 0, "#endif directive expected"},
	{UnexpectedPPDirective, SevError, 0, "Unexpected preprocessor directive"},
	{UserError, SevError, 0, "#error: '{0}'"},
	{UserWarning, SevWarning, 1, "#warning: '{0}'"},
	{PPTooLate, SevError, 0, "Cannot define or undefine preprocessor symbols after first token in file"},
	{UnterminatedComment, SevError, 0, "End-of-file found, '*/' expected"},
	{EndRegionExpected, SevError, 0, "#endregion directive expected"},
	{UnterminatedStringLiteral, SevError, 0, "Unterminated string literal"},
	{PPNotFirstToken, SevError, 0, "Preprocessor directives must appear as the first non-whitespace character on a line"},
	{ExpectedIdentGotKeyword, SevError, 0, "Identifier expected; '{0}' is a keyword"},
	{UnexpectedCharacter, SevError, 0, "Unexpected character '{0}'"},
	{ExpectedRightBrace, SevError, 0, "} expected"},
	{ExpectedLeftBrace, SevError, 0, "{ expected"},
	{InvalidPPExpression, SevError, 0, "Invalid preprocessor expression"},
	{ExpectedTypeDeclaration, SevError, 0, "Expected class, delegate, enum, interface, or struct"},
	{InvalidTokenInTypeDecl, SevError, 0, "Invalid token '{0}' in class, struct, or interface member declaration"},
	{InvalidLineDirective, SevError, 0, "The line number specified for #line directive is missing or invalid"},
	{MisplacedXmlComment, SevWarning, 2, "XML comment is not placed on a valid language element"},
	{UnrecognizedPragma, SevWarning, 1, "Unrecognized #pragma directive"},
	{InvalidWarningPragma, SevWarning, 1, "Expected disable or restore"},
	{MisplacedVerbatim, SevError, 0, "Keyword, identifier, or string expected after verbatim specifier: @"},
	{InvalidWarningCode, SevWarning, 1, "'{0}' is not a valid warning number"},
}

var (
	catalog      map[Code]codeInfo
	warningCodes []Code // sorted, for binary-search IsWarning
)

func init() {
	catalog = make(map[Code]codeInfo, len(catalogEntries))
	for _, e := range catalogEntries {
		if e.code > 9999 {
			panic(fmt.Sprintf("diag: code %d out of range", e.code))
		}
		if _, dup := catalog[e.code]; dup {
			panic(fmt.Sprintf("diag: duplicate code %d", e.code))
		}
		catalog[e.code] = codeInfo{sev: e.sev, level: e.level, format: e.format}
		if e.sev == SevWarning {
			warningCodes = append(warningCodes, e.code)
		}
	}
	sort.Slice(warningCodes, func(i, j int) bool { return warningCodes[i] < warningCodes[j] })
}

// ID renders the code the way diagnostics print it.
func (c Code) ID() string {
	return fmt.Sprintf("CS%04d", uint16(c))
}

// Severity returns the cataloged severity for the code.
func (c Code) Severity() Severity {
	return catalog[c].sev
}

// WarningLevel returns the warning level of the code; 0 for non-warnings.
func (c Code) WarningLevel() int {
	return catalog[c].level
}

// Known reports whether the code exists in the catalog.
func (c Code) Known() bool {
	_, ok := catalog[c]
	return ok
}

// IsWarning reports whether n is the code of a cataloged warning. It is the
// validity check behind '#pragma warning'.
func IsWarning(n int) bool {
	if n < 0 || n > 9999 {
		return false
	}
	i := sort.Search(len(warningCodes), func(i int) bool { return int(warningCodes[i]) >= n })
	return i < len(warningCodes) && int(warningCodes[i]) == n
}

// Message formats the catalog entry for the code with its arguments
// substituted for {0}-style placeholders. Numeric arguments render with
// culture-invariant formatting.
func (c Code) Message(args ...any) string {
	text := catalog[c].format
	for i, a := range args {
		text = strings.ReplaceAll(text, fmt.Sprintf("{%d}", i), fmt.Sprint(a))
	}
	return text
}
