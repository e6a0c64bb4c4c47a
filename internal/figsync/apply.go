package figsync

import "fmt"

// StyleWriter receives the style updates produced by Apply, typically to
// rewrite the local style source.
type StyleWriter interface {
	WriteStyle(update StyleUpdate) error
}

// StyleWriterFunc adapts a function to StyleWriter.
type StyleWriterFunc func(StyleUpdate) error

// WriteStyle calls f(update).
func (f StyleWriterFunc) WriteStyle(update StyleUpdate) error { return f(update) }

// Apply turns changes into style updates, keyed by the change's local token
// when it has one. Changes whose token has no selector are skipped silently.
// When writer is non-nil every update is passed to it; a failed write leaves
// its change unapplied and is returned in errs.
func Apply(changes []DesignChange, lookup Lookup, writer StyleWriter) (applied []DesignChange, updates []StyleUpdate, errs []error) {
	for _, change := range changes {
		token := change.Token
		if change.LocalToken != "" {
			token = change.LocalToken
		}
		selector := lookup.Selector(token)
		if selector == "" {
			continue
		}

		update := StyleUpdate{
			Selector:    selector,
			CSSProperty: change.CSSProperty,
			NewValue:    change.NewValue,
			Token:       token,
		}
		if writer != nil {
			if err := writer.WriteStyle(update); err != nil {
				errs = append(errs, fmt.Errorf("write style %s: %w", token, err))
				continue
			}
		}

		applied = append(applied, change)
		updates = append(updates, update)
	}
	return applied, updates, errs
}
