package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/log"
)

type fakeCatalogReader struct {
	beads []domain.Bead
	err   error
}

func (f fakeCatalogReader) ReadCatalog() ([]domain.Bead, error) {
	return f.beads, f.err
}

type fakeHistogramReader struct {
	hist  domain.Histogram
	err   error
	calls []string
}

func (f *fakeHistogramReader) ReadHistogram(path string) (domain.Histogram, error) {
	f.calls = append(f.calls, path)
	return f.hist, f.err
}

func TestLoadService_EmptyCatalog(t *testing.T) {
	_, err := LoadService(fakeCatalogReader{}, &fakeHistogramReader{}, DefaultAlphaThreshold, log.Nop())
	require.True(t, errors.Is(err, domain.ErrEmptyCatalog))
}

func TestLoadService_ReaderError(t *testing.T) {
	boom := errors.New("permission denied")
	_, err := LoadService(fakeCatalogReader{err: boom}, &fakeHistogramReader{}, DefaultAlphaThreshold, log.Nop())
	require.ErrorIs(t, err, boom)
}

func TestService_ConvertColor(t *testing.T) {
	svc, err := LoadService(fakeCatalogReader{beads: testPool()}, &fakeHistogramReader{}, DefaultAlphaThreshold, log.Nop(), WithTopN(1))
	require.NoError(t, err)

	conv, err := svc.ConvertColor("perler", "magenta", "hama")
	require.NoError(t, err)
	require.Len(t, conv.Matches, 1)
	require.Equal(t, 7, svc.Catalog().Len())
	require.NotNil(t, svc.Converter())
}

func TestService_EstimateSpriteCost(t *testing.T) {
	hists := &fakeHistogramReader{hist: domain.Histogram{
		Width: 2, Height: 1,
		Colors: []domain.ColorCount{{Color: domain.RGBA{A: 255}, Count: 2}},
	}}
	svc, err := LoadService(fakeCatalogReader{beads: testPool()}, hists, DefaultAlphaThreshold, log.Nop())
	require.NoError(t, err)

	cost, err := svc.EstimateSpriteCost("sprite.png", "hama")
	require.NoError(t, err)
	require.Equal(t, 2, cost.TotalBeads)
	require.Equal(t, "h18", cost.Usage[0].Bead.Code)
	require.Equal(t, []string{"sprite.png"}, hists.calls)
}

func TestService_EstimateSpriteCost_Errors(t *testing.T) {
	decodeErr := errors.New("unknown format")
	hists := &fakeHistogramReader{err: decodeErr}
	svc, err := LoadService(fakeCatalogReader{beads: testPool()}, hists, DefaultAlphaThreshold, log.Nop())
	require.NoError(t, err)

	_, err = svc.EstimateSpriteCost("broken.png", "hama")
	require.ErrorIs(t, err, decodeErr)

	_, err = svc.EstimateSpriteCost("broken.png", "nabbi")
	var unknown *domain.UnknownBrandError
	require.ErrorAs(t, err, &unknown)
	require.Len(t, hists.calls, 1, "unknown brand is rejected before decoding")
}
