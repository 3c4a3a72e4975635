package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a single-line field. A digits-only field ignores any
// other printable key.
type TextInput struct {
	field  textinput.Model
	digits bool
}

// NewTextInput returns a focused field. A limit of 0 means unbounded.
func NewTextInput(placeholder string, digitsOnly bool, limit int) TextInput {
	f := textinput.New()
	f.Prompt = ""
	f.Placeholder = placeholder
	f.CharLimit = limit
	f.Focus()
	return TextInput{field: f, digits: digitsOnly}
}

// Init starts the cursor.
func (t TextInput) Init() tea.Cmd {
	return t.field.Focus()
}

// Update feeds msg to the field.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && t.digits && !isDigits(key.Text) {
		return t, nil
	}
	var cmd tea.Cmd
	t.field, cmd = t.field.Update(msg)
	return t, cmd
}

// isDigits reports whether text holds only 0-9. Empty text belongs to
// editing keys such as backspace and is allowed.
func isDigits(text string) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (t TextInput) View() string { return t.field.View() }

func (t TextInput) Value() string { return t.field.Value() }

// Int parses the trimmed value.
func (t TextInput) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(t.field.Value()))
}

func (t *TextInput) SetValue(s string) { t.field.SetValue(s) }
