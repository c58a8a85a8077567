package screens

import (
	"strconv"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/fictions/pkg/app/styles"
)

const (
	promptPlaceholder = "Fiction ID"
	invalidIDMessage  = "Invalid ID"
)

// AddPrompt reads a numeric fiction ID.
type AddPrompt struct {
	input  textinput.Model
	active bool
}

func NewAddPrompt() *AddPrompt {
	ti := textinput.New()
	ti.Placeholder = promptPlaceholder
	ti.Prompt = "Add: "
	ti.CharLimit = 10
	ti.Width = 20

	return &AddPrompt{input: ti}
}

func (p *AddPrompt) Active() bool { return p.active }

func (p *AddPrompt) Open() tea.Cmd {
	p.active = true
	p.input.Placeholder = promptPlaceholder
	p.input.SetValue("")
	p.input.Focus()
	return textinput.Blink
}

func (p *AddPrompt) Close() {
	p.active = false
	p.input.Blur()
	p.input.SetValue("")
}

// Fail clears the input and shows "Invalid ID" as the placeholder. The
// prompt stays open.
func (p *AddPrompt) Fail() {
	p.input.SetValue("")
	p.input.Placeholder = invalidIDMessage
}

// Value parses the current input.
func (p *AddPrompt) Value() (int, bool) {
	id, err := strconv.Atoi(p.input.Value())
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Update forwards a message to the input, dropping anything but digits.
func (p *AddPrompt) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyRunes {
		for _, r := range k.Runes {
			if !unicode.IsDigit(r) {
				return nil
			}
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *AddPrompt) View() string {
	return styles.SubtitleStyle.Render(p.input.View())
}
