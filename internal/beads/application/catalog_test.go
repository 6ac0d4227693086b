package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/log"
)

func testPool() []domain.Bead {
	return []domain.Bead{
		{Brand: "hama", Code: "h01", Name: "white", Hex: "ffffff", RGB: domain.RGB{R: 255, G: 255, B: 255}},
		{Brand: "hama", Code: "h18", Name: "black", Hex: "000000", RGB: domain.RGB{}},
		{Brand: "hama", Code: "h05", Name: "red", Hex: "ff0000", RGB: domain.RGB{R: 250}},
		{Brand: "perler", Code: "p01", Name: "white", Hex: "f1f1f1", RGB: domain.RGB{R: 241, G: 241, B: 241}},
		{Brand: "perler", Code: "p18", Name: "black", Hex: "2e2f32", RGB: domain.RGB{R: 46, G: 47, B: 50}},
		{Brand: "perler", Code: "p05", Name: "red", Hex: "bf0a30", RGB: domain.RGB{R: 191, G: 10, B: 48}},
		{Brand: "perler", Code: "p38", Name: "magenta", Hex: "f23e8f", RGB: domain.RGB{R: 242, G: 62, B: 143}},
	}
}

func newTestCatalog(t *testing.T, opts ...CatalogOption) *Catalog {
	t.Helper()
	c, err := NewCatalog(testPool(), append([]CatalogOption{WithLogger(log.Nop())}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestNewCatalog_Empty(t *testing.T) {
	_, err := NewCatalog(nil)
	require.True(t, errors.Is(err, domain.ErrEmptyCatalog))
}

func TestCatalog_Defaults(t *testing.T) {
	c := newTestCatalog(t)
	require.Equal(t, 7, c.Len())
	require.Equal(t, DefaultTopN, c.TopNCount())
	require.Equal(t, domain.TieBreakLast, c.Policy())
}

func TestCatalog_Brands(t *testing.T) {
	c := newTestCatalog(t)
	require.Equal(t, []BrandSummary{{Brand: "hama", Count: 3}, {Brand: "perler", Count: 4}}, c.Brands())
	require.True(t, c.HasBrand(" HAMA "))
	require.False(t, c.HasBrand("artkal"))
}

func TestCatalog_FindColor(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name     string
		brand    string
		id       string
		wantCode string
		wantErr  any
	}{
		{"by name", "hama", "red", "h05", nil},
		{"by code", "perler", "P38", "p38", nil},
		{"mixed case brand", "Perler", "White", "p01", nil},
		{"unknown brand", "artkal", "red", "", &domain.UnknownBrandError{}},
		{"unknown color", "hama", "magenta", "", &domain.UnknownColorError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bead, err := c.FindColor(tt.brand, tt.id)
			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
				require.Equal(t, tt.wantCode, bead.Code)
			case *domain.UnknownBrandError:
				require.ErrorAs(t, err, &want)
			case *domain.UnknownColorError:
				require.ErrorAs(t, err, &want)
			}
		})
	}
}

func TestCatalog_NearestMemoized(t *testing.T) {
	c := newTestCatalog(t)

	first, ok := c.Nearest(domain.RGB{R: 200, G: 0, B: 40}, "Perler")
	require.True(t, ok)
	require.Equal(t, "p05", first.Bead.Code)
	require.Equal(t, 1, c.memo.ItemCount())

	second, ok := c.Nearest(domain.RGB{R: 200, G: 0, B: 40}, "perler")
	require.True(t, ok)
	require.Equal(t, first, second)
	require.Equal(t, 1, c.memo.ItemCount(), "normalized brand reuses the memo entry")

	_, ok = c.Nearest(domain.RGB{}, "artkal")
	require.False(t, ok)
	require.Equal(t, 2, c.memo.ItemCount())
}

func TestCatalog_WithoutMemo(t *testing.T) {
	c := newTestCatalog(t, WithMemo(false))
	require.Nil(t, c.memo)

	m, ok := c.Nearest(domain.RGB{}, domain.AllBrands)
	require.True(t, ok)
	require.Equal(t, "h18", m.Bead.Code)
}

func TestCatalog_TopNOption(t *testing.T) {
	c := newTestCatalog(t, WithTopN(2))
	matches := c.TopN(domain.RGB{R: 255, G: 255, B: 255}, "perler")
	require.Len(t, matches, 2)
	require.Equal(t, "p01", matches[0].Bead.Code)
}

func TestCatalog_TieBreakOption(t *testing.T) {
	pool := []domain.Bead{
		{Brand: "a", Code: "1", RGB: domain.RGB{R: 9}},
		{Brand: "a", Code: "2", RGB: domain.RGB{R: 9}},
	}
	last, err := NewCatalog(pool)
	require.NoError(t, err)
	first, err := NewCatalog(pool, WithTieBreak(domain.TieBreakFirst))
	require.NoError(t, err)

	m, _ := last.Nearest(domain.RGB{R: 9}, "a")
	require.Equal(t, "2", m.Bead.Code)
	m, _ = first.Nearest(domain.RGB{R: 9}, "a")
	require.Equal(t, "1", m.Bead.Code)
}
