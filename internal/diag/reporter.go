package diag

import "cesium/internal/source"

// Reporter is the minimal contract phases use to emit diagnostics. The
// severity and format string come from the catalog; implementations apply
// gating (warning level, pragmas, warn-as-error) before recording.
type Reporter interface {
	Report(code Code, loc source.FileSpan, args ...any)
}

// CollectionReporter records every diagnostic into a Collection without
// gating, for callers that want the raw stream.
type CollectionReporter struct {
	Messages *Collection
}

func (r CollectionReporter) Report(code Code, loc source.FileSpan, args ...any) {
	if r.Messages == nil {
		return
	}
	r.Messages.Add(&Message{
		Severity: code.Severity(),
		Code:     code,
		Source:   loc.Name,
		Pos:      loc.Start,
		Text:     code.Message(args...),
	})
}
