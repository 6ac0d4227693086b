package menu

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/beadmatch/internal/beads/application"
	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/log"
)

type stubCatalog []domain.Bead

func (s stubCatalog) ReadCatalog() ([]domain.Bead, error) { return s, nil }

type stubHistograms struct {
	hist domain.Histogram
	err  error
}

func (s stubHistograms) ReadHistogram(string) (domain.Histogram, error) { return s.hist, s.err }

func testBeads() stubCatalog {
	return stubCatalog{
		{Brand: "hama", Code: "h01", Name: "white", RGB: domain.RGB{R: 255, G: 255, B: 255}},
		{Brand: "hama", Code: "h18", Name: "black", RGB: domain.RGB{}},
		{Brand: "hama", Code: "h05", Name: "red", RGB: domain.RGB{R: 250}},
		{Brand: "perler", Code: "p01", Name: "white", RGB: domain.RGB{R: 241, G: 241, B: 241}},
		{Brand: "perler", Code: "p05", Name: "red", RGB: domain.RGB{R: 191, G: 10, B: 48}},
	}
}

func newTestModel(t *testing.T, hists stubHistograms) Model {
	t.Helper()
	svc, err := application.LoadService(testBeads(), hists, application.DefaultAlphaThreshold, log.Nop())
	require.NoError(t, err)
	return New(Config{Service: svc, Logger: log.Nop()})
}

// enter types value and presses enter, returning the updated model and the
// command produced by the submission.
func enter(t *testing.T, m Model, value string) (Model, tea.Cmd) {
	t.Helper()
	if value != "" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)})
		m = next.(Model)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func writeImageFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sprite.png")
	require.NoError(t, os.WriteFile(path, []byte("not decoded by the stub"), 0o600))
	return path
}

func TestMenu_InvalidOption(t *testing.T) {
	for _, in := range []string{"", "abc", "0", "4", "-1"} {
		t.Run(in, func(t *testing.T) {
			m, cmd := enter(t, newTestModel(t, stubHistograms{}), in)
			require.Nil(t, cmd)
			require.Equal(t, stageOption, m.stage)
			require.Equal(t, msgInvalidOption, m.notice)
		})
	}
}

func TestMenu_OptionAcceptsSurroundingSpace(t *testing.T) {
	m, _ := enter(t, newTestModel(t, stubHistograms{}), " 2 ")
	require.Equal(t, stageConvertBrand, m.stage)
	require.Empty(t, m.notice)
	require.Equal(t, PromptBrand, m.input.Prompt)
}

func TestMenu_Exit(t *testing.T) {
	m, cmd := enter(t, newTestModel(t, stubHistograms{}), "3")
	require.True(t, m.Quitting())
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, m.View())
}

func TestMenu_ConvertFlow(t *testing.T) {
	m, _ := enter(t, newTestModel(t, stubHistograms{}), "2")

	m, _ = enter(t, m, "nabbi")
	require.Equal(t, stageConvertBrand, m.stage)
	require.Equal(t, msgInvalidBrand, m.notice)

	m, _ = enter(t, m, "HAMA")
	require.Equal(t, stageConvertColor, m.stage)
	require.Equal(t, "hama", m.brand)

	m, _ = enter(t, m, "Purple")
	require.Equal(t, stageConvertColor, m.stage)
	require.Equal(t, "couldn't find the color by the id: purple for the brand: hama!", m.notice)

	m, _ = enter(t, m, "H05")
	require.Equal(t, stageConvertTarget, m.stage)
	require.Equal(t, "h05", m.source.Code)

	m, _ = enter(t, m, "hama")
	require.Equal(t, stageConvertTarget, m.stage)
	require.Equal(t, msgSameBrand, m.notice)

	m, _ = enter(t, m, "nabbi")
	require.Equal(t, msgInvalidBrand, m.notice)

	m, cmd := enter(t, m, "perler")
	require.Equal(t, stageWorking, m.stage)
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(Model)
	require.Equal(t, stageOption, m.stage)
	require.False(t, m.failed)

	out := ansi.Strip(m.View())
	require.Contains(t, out, "1.: (Perler) (Likeness:")
	require.Contains(t, out, "Red [P05]")
	require.Contains(t, out, "2.: (Perler)")
	require.Contains(t, out, PromptOption)
}

func TestMenu_SpriteCostFlow(t *testing.T) {
	hists := stubHistograms{hist: domain.Histogram{
		Width: 2, Height: 2,
		Colors: []domain.ColorCount{
			{Color: domain.RGBA{R: 255, G: 255, B: 255, A: 255}, Count: 3},
			{Color: domain.RGBA{A: 0}, Count: 1},
		},
	}}
	m, _ := enter(t, newTestModel(t, hists), "1")
	require.Equal(t, stageImagePath, m.stage)

	m, _ = enter(t, m, filepath.Join(t.TempDir(), "missing.png"))
	require.Equal(t, stageImagePath, m.stage)
	require.Equal(t, msgNotAFile, m.notice)

	m, _ = enter(t, m, t.TempDir())
	require.Equal(t, msgNotAFile, m.notice, "directories are rejected")

	m, _ = enter(t, m, writeImageFile(t))
	require.Equal(t, stageSpriteBrand, m.stage)

	m, _ = enter(t, m, "nabbi")
	require.Equal(t, msgInvalidBrand, m.notice)

	m, cmd := enter(t, m, "hama")
	require.Equal(t, stageWorking, m.stage)

	next, _ := m.Update(cmd())
	m = next.(Model)

	out := ansi.Strip(m.View())
	require.Contains(t, out, "total beads: 3")
	require.Contains(t, out, "White [H01]")
	require.Contains(t, out, "1 transparent pixels skipped")
}

func TestMenu_SpriteCostErrorReturnsToMenu(t *testing.T) {
	m, _ := enter(t, newTestModel(t, stubHistograms{err: errors.New("image: unknown format")}), "1")
	m, _ = enter(t, m, writeImageFile(t))
	m, cmd := enter(t, m, "hama")

	next, _ := m.Update(cmd())
	m = next.(Model)

	require.Equal(t, stageOption, m.stage)
	require.True(t, m.failed)
	out := ansi.Strip(m.View())
	require.Contains(t, out, msgSomethingWrong)
	require.Contains(t, out, "unknown format")
}

func TestMenu_EscReturnsToMenu(t *testing.T) {
	m, _ := enter(t, newTestModel(t, stubHistograms{}), "2")
	m, _ = enter(t, m, "hama")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	require.Equal(t, stageOption, m.stage)
	require.Equal(t, PromptOption, m.input.Prompt)
}

func TestMenu_EnterIgnoredWhileWorking(t *testing.T) {
	m := newTestModel(t, stubHistograms{})
	m.stage = stageWorking

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.Equal(t, stageWorking, next.(Model).stage)
	require.Contains(t, ansi.Strip(next.(Model).View()), "working...")
}

func TestMenu_WindowSize(t *testing.T) {
	next, cmd := newTestModel(t, stubHistograms{}).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := next.(Model)
	require.Nil(t, cmd)
	require.Equal(t, 120, m.width)
	require.Equal(t, 40, m.height)
	require.Equal(t, 120, m.opts.Width)
}

func TestMenu_Program(t *testing.T) {
	tm := teatest.NewTestModel(t, newTestModel(t, stubHistograms{}), teatest.WithInitialTermSize(100, 50))

	waitFor := func(s string) {
		teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
			return bytes.Contains(b, []byte(s))
		}, teatest.WithDuration(3*time.Second))
	}

	waitFor("Enter option:")
	tm.Type("7")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor("invalid option try again...")

	tm.Type("2")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor("Enter current brand:")

	tm.Type("perler")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor("Enter name or id of the current color:")

	tm.Type("p05")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor("Enter new brand:")

	tm.Type("hama")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor("Likeness:")

	tm.Type("3")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final, ok := tm.FinalModel(t).(Model)
	require.True(t, ok)
	require.True(t, final.Quitting())
}

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func TestMenu_CopyResult(t *testing.T) {
	cb := &fakeClipboard{}
	svc, err := application.LoadService(testBeads(), stubHistograms{}, application.DefaultAlphaThreshold, log.Nop())
	require.NoError(t, err)
	m := New(Config{Service: svc, Logger: log.Nop(), Clipboard: cb})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = next.(Model)
	require.Equal(t, msgNothingToCopy, m.status)
	require.Empty(t, cb.copied)

	m, _ = enter(t, m, "2")
	m, _ = enter(t, m, "hama")
	m, _ = enter(t, m, "red")
	m, cmd := enter(t, m, "perler")
	next, _ = m.Update(cmd())
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	m = next.(Model)
	require.Equal(t, msgCopied, m.status)
	require.Len(t, cb.copied, 1)
	require.Contains(t, cb.copied[0], "1.: (Perler) (Likeness:")
	require.Equal(t, cb.copied[0], ansi.Strip(cb.copied[0]), "copied text carries no styling")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	require.Empty(t, next.(Model).status, "status clears on the next key")
}

func TestMenu_CopyResultError(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no clipboard utility available")}
	svc, err := application.LoadService(testBeads(), stubHistograms{}, application.DefaultAlphaThreshold, log.Nop())
	require.NoError(t, err)
	m := New(Config{Service: svc, Logger: log.Nop(), Clipboard: cb})
	m.output = "1.: (Perler) (Likeness: 90.00%) Red [P05]"

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.Equal(t, "no clipboard utility available", next.(Model).status)
}
