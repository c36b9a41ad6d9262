package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"photoprint-backend/internal/catalog"
)

func TestSizePriceTable(t *testing.T) {
	assert.Equal(t, 25, catalog.Size4R.Price())
	assert.Equal(t, 35, catalog.Size5R.Price())
	assert.Equal(t, 50, catalog.Size8R.Price())
	assert.Equal(t, 25, catalog.Size("10R").Price())
}

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, `5R (5×7")`, catalog.Size5R.Label())
	assert.Equal(t, `A3 (4×6")`, catalog.Size("A3").Label())
}

func TestParseSize(t *testing.T) {
	s, ok := catalog.ParseSize(" 8r ")
	assert.True(t, ok)
	assert.Equal(t, catalog.Size8R, s)

	_, ok = catalog.ParseSize("3R")
	assert.False(t, ok)
}

func TestNamesFallBack(t *testing.T) {
	assert.Equal(t, "Premium Lustre", catalog.PaperPremium.Name())
	assert.Equal(t, "Glossy Photo Paper", catalog.Paper("canvas").Name())
	assert.Equal(t, "School Spirit", catalog.TemplateSchool.Name())
	assert.Equal(t, "No Template", catalog.Template("retro").Name())
}

func TestTotalAndFormat(t *testing.T) {
	total := catalog.Total(catalog.Size5R, 3)
	assert.Equal(t, 105, total)
	assert.Equal(t, "₱105", catalog.FormatPeso(total))
	assert.Equal(t, "₱1,250", catalog.FormatPeso(1250))
}

func TestGalleryIsCopied(t *testing.T) {
	cards := catalog.Gallery()
	cards[0].Title = "changed"

	card, ok := catalog.LookupCard(catalog.TemplateClassic)
	assert.True(t, ok)
	assert.Equal(t, "Classic Frame", card.Title)

	_, ok = catalog.LookupCard(catalog.TemplateNone)
	assert.False(t, ok)
}
