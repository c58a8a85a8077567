package screens

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/fictions/pkg/app/components"
	"github.com/kerbaras/fictions/pkg/app/styles"
	"github.com/kerbaras/fictions/pkg/data"
	"github.com/kerbaras/fictions/pkg/services"
)

type pane int

const (
	fictionsPane pane = iota
	chaptersPane
)

type Options struct {
	Reversed bool // chapter list starts most recent first
	MarginX  int
	MarginY  int
}

// RootScreen is the whole application state: the fiction list, the chapter
// list of the selected fiction, and the reading pane.
type RootScreen struct {
	controller *services.LibraryController

	fictions *components.ListState[components.FictionItem]
	chapters *components.ListState[components.ChapterItem]
	reader   *components.ReadingPane
	prompt   *AddPrompt
	keys     keyMap

	focus   pane
	shownID int // fiction whose chapters are listed
	busy    bool
	status  string
	err     error
	marginX int
	marginY int
	width   int
	height  int
	now     func() time.Time
}

func NewRootScreen(controller *services.LibraryController, opts Options) *RootScreen {
	return &RootScreen{
		controller: controller,
		fictions:   components.NewListState[components.FictionItem](false),
		chapters:   components.NewListState[components.ChapterItem](opts.Reversed),
		reader:     components.NewReadingPane(),
		prompt:     NewAddPrompt(),
		keys:       defaultKeyMap(),
		marginX:    max(0, opts.MarginX),
		marginY:    max(0, opts.MarginY),
		busy:       true,
		status:     "Loading library...",
		now:        time.Now,
	}
}

// Messages
type libraryLoadedMsg struct {
	err error
}

type fictionAddedMsg struct {
	fiction *data.Fiction
	err     error
}

type chapterOpenedMsg struct {
	chapter *data.Chapter
	err     error
}

// Commands
func (r *RootScreen) loadLibrary() tea.Msg {
	return libraryLoadedMsg{err: r.controller.Load()}
}

func (r *RootScreen) addFiction(id int) tea.Cmd {
	return func() tea.Msg {
		fiction, err := r.controller.Add(id)
		return fictionAddedMsg{fiction: fiction, err: err}
	}
}

func (r *RootScreen) openChapter(fictionID int, ref data.ChapterReference) tea.Cmd {
	return func() tea.Msg {
		chapter, err := r.controller.Open(fictionID, ref)
		return chapterOpenedMsg{chapter: chapter, err: err}
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.loadLibrary
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Keep both windows around their cursors after any change.
	defer r.recomputeWindows()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		return r, nil

	case libraryLoadedMsg:
		r.busy = false
		r.status = ""
		if msg.err != nil {
			r.err = msg.err
		}
		r.fictions.Reset(r.fictionItems())
		r.syncChapters()
		return r, nil

	case fictionAddedMsg:
		r.busy = false
		if msg.err != nil {
			log.Printf("Warning: %v", msg.err)
			r.prompt.Fail()
			return r, nil
		}
		r.prompt.Close()
		r.fictions.SetItems(r.fictionItems())
		r.status = fmt.Sprintf("Added %s", msg.fiction.Title)
		r.syncChapters()
		return r, nil

	case chapterOpenedMsg:
		r.busy = false
		if msg.err != nil {
			r.err = msg.err
			return r, nil
		}
		r.err = nil
		r.status = ""
		r.reader.Open(msg.chapter)
		r.refreshChapters()
		return r, nil

	case tea.KeyMsg:
		if r.busy {
			return r, nil
		}
		if r.prompt.Active() {
			return r.updatePrompt(msg)
		}
		return r.handleKey(msg)
	}

	if r.prompt.Active() {
		return r, r.prompt.Update(msg)
	}
	return r, nil
}

func (r *RootScreen) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		r.prompt.Close()
		return r, nil
	case tea.KeyEnter:
		id, ok := r.prompt.Value()
		if !ok {
			r.prompt.Fail()
			return r, nil
		}
		r.busy = true
		r.status = fmt.Sprintf("Fetching fiction %d...", id)
		return r, r.addFiction(id)
	case tea.KeyCtrlC:
		return r.quit()
	}
	return r, r.prompt.Update(msg)
}

func (r *RootScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, r.keys.Quit):
		return r.quit()

	case key.Matches(msg, r.keys.SwitchPane):
		if r.focus == fictionsPane {
			r.focus = chaptersPane
		} else {
			r.focus = fictionsPane
		}

	case key.Matches(msg, r.keys.Down):
		r.moveFocused(1)

	case key.Matches(msg, r.keys.Up):
		r.moveFocused(-1)

	case key.Matches(msg, r.keys.Reverse):
		if r.focus == fictionsPane {
			r.fictions.ToggleReversed()
		} else {
			r.chapters.ToggleReversed()
		}

	case key.Matches(msg, r.keys.Open):
		if r.focus != chaptersPane {
			r.focus = chaptersPane
			return r, nil
		}
		item, ok := r.chapters.Selected()
		if !ok {
			return r, nil
		}
		r.busy = true
		r.err = nil
		r.status = fmt.Sprintf("Fetching %s...", item.Ref.Title)
		return r, r.openChapter(r.shownID, item.Ref)

	case key.Matches(msg, r.keys.ScrollDown):
		r.reader.Scroll(1)

	case key.Matches(msg, r.keys.ScrollUp):
		r.reader.Scroll(-1)

	case key.Matches(msg, r.keys.First):
		r.reader.First()

	case key.Matches(msg, r.keys.Last):
		r.reader.Last()

	case key.Matches(msg, r.keys.Add):
		return r, r.prompt.Open()

	case key.Matches(msg, r.keys.Remove):
		item, ok := r.fictions.Selected()
		if !ok {
			return r, nil
		}
		r.controller.Remove(item.Fiction.ID)
		r.fictions.Remove(r.fictions.SelectedIndex())
		r.status = fmt.Sprintf("Removed %s", item.Fiction.Title)
		r.syncChapters()
	}

	return r, nil
}

func (r *RootScreen) quit() (tea.Model, tea.Cmd) {
	if err := r.controller.Save(); err != nil {
		log.Printf("Warning: failed to save library: %v", err)
	}
	return r, tea.Quit
}

func (r *RootScreen) moveFocused(delta int) {
	if r.focus == fictionsPane {
		r.fictions.MoveDisplay(delta)
		r.syncChapters()
		return
	}
	r.chapters.MoveDisplay(delta)
}

func (r *RootScreen) recomputeWindows() {
	r.fictions.RecomputeWindow(r.listHeight())
	r.chapters.RecomputeWindow(r.listHeight())
}

func (r *RootScreen) fictionItems() []components.FictionItem {
	fictions := r.controller.Fictions()
	items := make([]components.FictionItem, len(fictions))
	for i, f := range fictions {
		items[i] = components.FictionItem{Fiction: f}
	}
	return items
}

func (r *RootScreen) chapterItems(fiction *data.Fiction) []components.ChapterItem {
	tracked := r.controller.HasHistory()
	read := r.controller.ReadChapters(fiction.ID)
	items := make([]components.ChapterItem, len(fiction.Chapters))
	for i, ref := range fiction.Chapters {
		items[i] = components.ChapterItem{Ref: ref, Tracked: tracked, Read: read[ref.Path], Now: r.now}
	}
	return items
}

// syncChapters lists the chapters of the selected fiction. The chapter
// cursor is reset only when the selected fiction changed.
func (r *RootScreen) syncChapters() {
	item, ok := r.fictions.Selected()
	if !ok {
		r.shownID = 0
		r.chapters.Reset(nil)
		return
	}
	if item.Fiction.ID == r.shownID {
		r.refreshChapters()
		return
	}
	r.shownID = item.Fiction.ID
	r.chapters.Reset(r.chapterItems(item.Fiction))
}

// refreshChapters updates read markers keeping the cursor.
func (r *RootScreen) refreshChapters() {
	item, ok := r.fictions.Selected()
	if !ok || item.Fiction.ID != r.shownID {
		return
	}
	r.chapters.SetItems(r.chapterItems(item.Fiction))
}

// Layout

const statusBarHeight = 1

func (r *RootScreen) paneHeight() int {
	return max(3, r.height-statusBarHeight)
}

// listHeight is the number of rows inside a pane: borders, vertical margin
// and the pane title are taken out.
func (r *RootScreen) listHeight() int {
	return max(1, r.paneHeight()-2-2*r.marginY-1)
}

func (r *RootScreen) paneWidths() (int, int, int) {
	left := r.width / 5
	middle := r.width / 5
	return left, middle, r.width - left - middle
}

func (r *RootScreen) renderPane(title, body string, width int, focused bool) string {
	inner := max(1, width-2-2*r.marginX)
	header := styles.PaneTitleStyle.Render(title)
	content := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return styles.Pane(focused).
		Padding(r.marginY, r.marginX).
		Width(inner + 2*r.marginX).
		Height(r.paneHeight() - 2).
		MaxHeight(r.paneHeight()).
		Render(content)
}

func (r *RootScreen) View() string {
	if r.width == 0 {
		return "Loading..."
	}

	left, middle, right := r.paneWidths()
	innerWidth := func(w int) int { return max(1, w-2-2*r.marginX) }
	height := r.listHeight()

	fictions := r.renderPane("Fictions",
		r.fictions.Render(innerWidth(left), height, r.focus == fictionsPane, "Press a to add"),
		left, r.focus == fictionsPane)

	chapters := r.renderPane("Chapters",
		r.chapters.Render(innerWidth(middle), height, r.focus == chaptersPane, "No chapters"),
		middle, r.focus == chaptersPane)

	content := r.renderPane("Content", r.reader.Render(innerWidth(right), height), right, false)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, fictions, chapters, content)
	return lipgloss.JoinVertical(lipgloss.Left, panes, r.statusBar())
}

func (r *RootScreen) statusBar() string {
	switch {
	case r.prompt.Active():
		return r.prompt.View()
	case r.busy:
		return styles.StatusBusy.Render(r.status)
	case r.err != nil:
		return styles.StatusError.Render(fmt.Sprintf("Error: %s", r.err))
	case r.status != "":
		return styles.StatusOK.Render(r.status)
	}

	var parts []string
	for _, b := range r.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return styles.HelpStyle.Render(strings.Join(parts, " • "))
}
