package figsync

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	changes := []DesignChange{
		{Token: "accent1", ChangeType: ChangeColor, CSSProperty: "color", NewValue: "rgb(0,0,0)"},
		{Token: "unmapped-fill-0", ChangeType: ChangeColor, CSSProperty: "color", NewValue: "rgb(1,1,1)"},
		{Token: "heading-xl", ChangeType: ChangeTypography, CSSProperty: "font-size", NewValue: "40px"},
	}

	applied, updates, errs := Apply(changes, DefaultLookup(), nil)

	assert.Empty(t, errs)
	require.Len(t, applied, 2)
	assert.Equal(t, "accent1", applied[0].Token)
	assert.Equal(t, "heading-xl", applied[1].Token)

	assert.Equal(t, []StyleUpdate{
		{Selector: ".text-accent1, .bg-accent1, .border-accent1", CSSProperty: "color", NewValue: "rgb(0,0,0)", Token: "accent1"},
		{Selector: ".text-3xl", CSSProperty: "font-size", NewValue: "40px", Token: "heading-xl"},
	}, updates)
}

func TestApply_LocalToken(t *testing.T) {
	changes := []DesignChange{
		{Token: "accent2-fill-0", LocalToken: "accent2", CSSProperty: "color", NewValue: "rgb(0,0,0)"},
	}

	applied, updates, errs := Apply(changes, DefaultLookup(), nil)
	assert.Empty(t, errs)
	require.Len(t, applied, 1)
	require.Len(t, updates, 1)
	assert.Equal(t, ".text-accent2, .bg-accent2, .border-accent2", updates[0].Selector)
	assert.Equal(t, "accent2", updates[0].Token)
}

func TestApply_Empty(t *testing.T) {
	applied, updates, errs := Apply(nil, DefaultLookup(), nil)
	assert.Empty(t, applied)
	assert.Empty(t, updates)
	assert.Empty(t, errs)
}

func TestApply_WriterFailure(t *testing.T) {
	var written []StyleUpdate
	writer := StyleWriterFunc(func(u StyleUpdate) error {
		if u.Token == "accent2" {
			return errors.New("read-only stylesheet")
		}
		written = append(written, u)
		return nil
	})

	changes := []DesignChange{
		{Token: "accent1", CSSProperty: "color", NewValue: "rgb(0,0,0)"},
		{Token: "accent2", CSSProperty: "color", NewValue: "rgb(0,0,0)"},
	}

	applied, updates, errs := Apply(changes, DefaultLookup(), writer)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "accent2")
	assert.Contains(t, errs[0].Error(), "read-only stylesheet")

	require.Len(t, applied, 1)
	assert.Equal(t, "accent1", applied[0].Token)
	assert.Equal(t, updates, written)
}
