package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"cesium/internal/token"
)

// TokenOutput is the serialized form of one token for dumps and caches.
type TokenOutput struct {
	Kind      string `json:"kind" msgpack:"kind"`
	Value     string `json:"value,omitempty" msgpack:"value,omitempty"`
	Source    string `json:"source" msgpack:"source"`
	StartLine int    `json:"startLine" msgpack:"startLine"`
	StartCol  int    `json:"startCol" msgpack:"startCol"`
	EndLine   int    `json:"endLine" msgpack:"endLine"`
	EndCol    int    `json:"endCol" msgpack:"endCol"`
	Line      int    `json:"lineOverride,omitempty" msgpack:"lineOverride,omitempty"`
	File      string `json:"sourceOverride,omitempty" msgpack:"sourceOverride,omitempty"`
}

func tokenOutputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, TokenOutput{
			Kind:      t.Kind.String(),
			Value:     t.Value.String(),
			Source:    t.Source,
			StartLine: t.Start.Line,
			StartCol:  t.Start.Col,
			EndLine:   t.End.Line,
			EndCol:    t.End.Col,
			Line:      t.Line,
			File:      t.LineSource,
		})
	}
	return out
}

// FormatTokensPretty writes an aligned, human-readable token listing.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, t := range tokens {
		display := t.Display()
		pad := 18 - runewidth.StringWidth(display)
		if pad < 1 {
			pad = 1
		}
		if _, err := fmt.Fprintf(w, "%4d: %s%*s at %s(%d,%d)-(%d,%d)",
			i+1, display, pad, "", t.Source,
			t.Start.Line, t.Start.Col, t.End.Line, t.End.Col); err != nil {
			return err
		}
		if t.Line == token.LineHidden {
			fmt.Fprint(w, " [hidden]")
		} else if t.Line != token.LineDefault {
			fmt.Fprintf(w, " [#line %d]", t.Line)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON writes the token stream as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenOutputs(tokens))
}

// FormatTokensMsgpack writes the token stream as a msgpack blob, the same
// shape the JSON form uses.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(tokens))
}
