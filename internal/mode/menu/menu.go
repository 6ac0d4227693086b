// Package menu implements the interactive numbered menu.
package menu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/beadmatch/internal/beads/application"
	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	"github.com/zjrosen/beadmatch/internal/clipboard"
	"github.com/zjrosen/beadmatch/internal/log"
	"github.com/zjrosen/beadmatch/internal/ui/report"
	"github.com/zjrosen/beadmatch/internal/ui/styles"
)

// Menu options.
const (
	OptionSpriteCost = 1
	OptionConvert    = 2
	OptionExit       = 3
)

// Prompts, one per stage.
const (
	PromptOption       = "Enter option: "
	PromptBrand        = "Enter current brand: "
	PromptColor        = "Enter name or id of the current color: "
	PromptNewBrand     = "Enter new brand: "
	PromptImagePath    = "Enter path to image file: "
	PromptSpriteBrand  = "Enter bead brand: "
	msgInvalidOption   = "invalid option try again..."
	msgInvalidBrand    = "invalid brand choice!"
	msgSameBrand       = "invalid brand choice, cannot convert bead between the same brand!"
	msgNotAFile        = "given file-path is not a file!"
	msgUnknownColorFmt = "couldn't find the color by the id: %s for the brand: %s!"
	msgSomethingWrong  = "Error! Something went wrong :("
	msgCopied          = "copied result to clipboard"
	msgNothingToCopy   = "nothing to copy yet"
)

type stage int

const (
	stageOption stage = iota
	stageConvertBrand
	stageConvertColor
	stageConvertTarget
	stageImagePath
	stageSpriteBrand
	stageWorking
)

func (s stage) prompt() string {
	switch s {
	case stageConvertBrand:
		return PromptBrand
	case stageConvertColor:
		return PromptColor
	case stageConvertTarget:
		return PromptNewBrand
	case stageImagePath:
		return PromptImagePath
	case stageSpriteBrand:
		return PromptSpriteBrand
	default:
		return PromptOption
	}
}

// conversionDoneMsg carries the result of a conversion started from the menu.
type conversionDoneMsg struct {
	conv application.Conversion
	err  error
}

// spriteCostDoneMsg carries the result of a sprite cost estimate.
type spriteCostDoneMsg struct {
	cost application.SpriteCost
	err  error
}

// Config holds Model dependencies.
type Config struct {
	Service *application.Service
	Logger  *log.Logger
	Report  report.Options
	// Clipboard receives the last result on ctrl+y. Defaults to clipboard.System.
	Clipboard clipboard.Clipboard
}

// Model is the bubbletea model for the interactive menu.
type Model struct {
	svc       *application.Service
	logger    *log.Logger
	opts      report.Options
	clipboard clipboard.Clipboard

	input textinput.Model
	stage stage

	brand  string
	source domain.Bead
	path   string

	notice string // validation message for the current prompt
	status string // confirmation of the last key action
	output string // last rendered result
	failed bool   // output is an error

	width    int
	height   int
	quitting bool
}

// New creates the menu model.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = PromptOption
	ti.PromptStyle = styles.PromptStyle
	ti.CharLimit = 4096
	ti.Focus()

	cb := cfg.Clipboard
	if cb == nil {
		cb = clipboard.System{}
	}

	return Model{
		svc:       cfg.Service,
		logger:    cfg.Logger,
		opts:      cfg.Report,
		clipboard: cb,
		input:     ti,
		stage:     stageOption,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.opts.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.stage.prompt())-1, 10)
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch msg.Type {
		case tea.KeyCtrlY:
			return m.copyOutput(), nil
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			if m.stage != stageOption && m.stage != stageWorking {
				m.notice = ""
				return m.setStage(stageOption), nil
			}
			return m, nil
		case tea.KeyEnter:
			if m.stage == stageWorking {
				return m, nil
			}
			value := m.input.Value()
			m.input.Reset()
			return m.submit(value)
		}

	case conversionDoneMsg:
		m = m.setStage(stageOption)
		if msg.err != nil {
			m.output, m.failed = msg.err.Error(), true
			return m, nil
		}
		m.output, m.failed = report.RenderConversion(msg.conv, m.opts), false
		return m, nil

	case spriteCostDoneMsg:
		m = m.setStage(stageOption)
		if msg.err != nil {
			m.output, m.failed = msgSomethingWrong+"\n"+msg.err.Error(), true
			return m, nil
		}
		m.output, m.failed = report.RenderSpriteCost(msg.cost, m.opts), false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates value for the current stage and advances.
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	m.notice = ""
	catalog := m.svc.Catalog()

	switch m.stage {
	case stageOption:
		choice, err := strconv.Atoi(strings.ToLower(strings.TrimSpace(value)))
		if err != nil || choice < OptionSpriteCost || choice > OptionExit {
			m.notice = msgInvalidOption
			return m, nil
		}
		m.output = ""
		switch choice {
		case OptionSpriteCost:
			return m.setStage(stageImagePath), nil
		case OptionConvert:
			return m.setStage(stageConvertBrand), nil
		default:
			m.quitting = true
			return m, tea.Quit
		}

	case stageConvertBrand:
		brand := domain.NormalizeBrand(value)
		if !catalog.HasBrand(brand) {
			m.notice = msgInvalidBrand
			return m, nil
		}
		m.brand = brand
		return m.setStage(stageConvertColor), nil

	case stageConvertColor:
		id := strings.ToLower(strings.TrimSpace(value))
		bead, err := catalog.FindColor(m.brand, id)
		if err != nil {
			m.notice = fmt.Sprintf(msgUnknownColorFmt, id, m.brand)
			return m, nil
		}
		m.source = bead
		return m.setStage(stageConvertTarget), nil

	case stageConvertTarget:
		target := domain.NormalizeBrand(value)
		if err := m.svc.Converter().ValidateTarget(m.brand, target); err != nil {
			var same *domain.SameBrandError
			if errors.As(err, &same) {
				m.notice = msgSameBrand
			} else {
				m.notice = msgInvalidBrand
			}
			return m, nil
		}
		m = m.setStage(stageWorking)
		return m, m.convert(m.source, target)

	case stageImagePath:
		path, err := filepath.Abs(strings.TrimSpace(value))
		if err != nil || !isFile(path) {
			m.notice = msgNotAFile
			return m, nil
		}
		m.path = path
		return m.setStage(stageSpriteBrand), nil

	case stageSpriteBrand:
		brand := domain.NormalizeBrand(value)
		if !catalog.HasBrand(brand) {
			m.notice = msgInvalidBrand
			return m, nil
		}
		m = m.setStage(stageWorking)
		return m, m.estimate(m.path, brand)
	}
	return m, nil
}

func (m Model) setStage(s stage) Model {
	m.stage = s
	m.input.Prompt = s.prompt()
	m.input.Reset()
	return m
}

func (m Model) convert(source domain.Bead, target string) tea.Cmd {
	svc := m.svc
	logger := m.logger
	return func() tea.Msg {
		conv, err := svc.Converter().ConvertBead(source, target)
		if err != nil {
			logger.Warn(log.CatUI, "Conversion failed", "error", err)
		}
		return conversionDoneMsg{conv: conv, err: err}
	}
}

func (m Model) estimate(path, brand string) tea.Cmd {
	svc := m.svc
	logger := m.logger
	return func() tea.Msg {
		cost, err := svc.EstimateSpriteCost(path, brand)
		if err != nil {
			logger.ErrorErr(log.CatUI, "Sprite cost failed", err, "path", path, "brand", brand)
		}
		return spriteCostDoneMsg{cost: cost, err: err}
	}
}

// copyOutput copies the last result, without styling, to the clipboard.
func (m Model) copyOutput() Model {
	if m.output == "" {
		m.status = msgNothingToCopy
		return m
	}
	if err := m.clipboard.Copy(ansi.Strip(m.output)); err != nil {
		m.logger.ErrorErr(log.CatUI, "Clipboard copy failed", err)
		m.status = err.Error()
		return m
	}
	m.status = msgCopied
	return m
}

// Quitting reports whether the user chose to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
