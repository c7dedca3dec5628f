package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/tvnav/internal/backend"
	"github.com/atomicstack/tvnav/internal/data/dispatcher"
	"github.com/atomicstack/tvnav/internal/focus"
	"github.com/atomicstack/tvnav/internal/logging"
	"github.com/atomicstack/tvnav/internal/state"
	"github.com/atomicstack/tvnav/internal/store"
	"github.com/atomicstack/tvnav/internal/theme"
	"github.com/atomicstack/tvnav/internal/ui/command"
	uistate "github.com/atomicstack/tvnav/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	screenApps     = "apps"
	screenStore    = "store"
	screenChat     = "chat"
	screenSettings = "settings"
)

var screenOrder = []string{screenApps, screenStore, screenChat, screenSettings}

var screenTitles = map[string]string{
	screenApps:     "Apps",
	screenStore:    "Store",
	screenChat:     "Community",
	screenSettings: "Settings",
}

// ScreenIDs lists the screens in sidebar order.
func ScreenIDs() []string {
	return append([]string(nil), screenOrder...)
}

var styles = theme.Default()

// cellSelector scores moves in terminal cells, where neighbouring rows are
// one cell apart.
var cellSelector = focus.Selector{Epsilon: 0.5, LaneWeight: focus.DefaultLaneWeight}

type msgHandler func(tea.Msg) tea.Cmd

// Options configures NewModel.
type Options struct {
	// Width and Height pin the view size; zero follows the terminal.
	Width      int
	Height     int
	ShowFooter bool
	// Screen is the screen shown at start.
	Screen   string
	Selector focus.Selector
	Keys     focus.KeyMap
	Watcher  *backend.Watcher
	// Store persists installed apps, the cart, settings and chat. A nil
	// store is replaced by a private in-memory one.
	Store *store.Store
}

// Model implements the Bubble Tea model for the media center.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	errMsg         string
	infoMsg        string
	infoExpire     time.Time
	backend        *backend.Watcher
	backendLastErr string

	handlers map[reflect.Type]msgHandler

	nav      *focus.Navigator
	keys     focus.KeyMap
	selector focus.Selector
	help     help.Model
	bus      *command.Bus

	root    *focus.Scope
	screens map[string]*focus.Scope
	layouts map[string]*layout
	pages   map[string]*uistate.Page
	current string
	modal   *modal

	catalog    state.CatalogStore
	dispatcher *dispatcher.Dispatcher
	store      *store.Store
	installed  uistate.Set
	settings   uistate.Set
	cart       []store.CartItem
	messages   []store.Message
	category   string

	search textinput.Model
	draft  textinput.Model
}

// NewModel builds the media center with every screen registered and the
// start screen focused on its sidebar entry.
func NewModel(opts Options) *Model {
	keys := opts.Keys
	if len(keys.Up.Keys()) == 0 {
		keys = focus.DefaultKeyMap()
	}
	selector := opts.Selector
	if selector == (focus.Selector{}) {
		selector = cellSelector
	}
	catalogStore := state.NewCatalogStore()
	m := &Model{
		showFooter: opts.ShowFooter,
		backend:    opts.Watcher,
		nav:        focus.NewNavigator(keys),
		keys:       keys,
		selector:   selector,
		help:       help.New(),
		bus:        command.New(),
		screens:    make(map[string]*focus.Scope, len(screenOrder)),
		layouts:    make(map[string]*layout, len(screenOrder)),
		pages:      make(map[string]*uistate.Page, len(screenOrder)),
		catalog:    catalogStore,
		dispatcher: dispatcher.New(catalogStore),
		store:      opts.Store,
		installed:  uistate.Set{},
		settings:   uistate.Set{},
		search:     newField("search ", "type to filter products"),
		draft:      newField("> ", "say something"),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if m.store == nil {
		db, err := store.Open(store.Memory)
		if err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
		}
		m.store = db
	}

	m.root = focus.NewScope("root", focus.ScopeOptions{OnBack: m.handleRootBack})
	m.nav.Reset(m.root)
	for _, id := range screenOrder {
		m.pages[id] = uistate.NewPage(id, screenTitles[id])
		m.screens[id] = m.newScreenScope(id)
	}

	m.loadPersisted()
	start := strings.ToLower(strings.TrimSpace(opts.Screen))
	if _, ok := m.screens[start]; !ok {
		start = screenApps
	}
	m.current = start
	m.relayoutAll()
	m.nav.Push(m.screens[start])
	m.screens[start].SetFocus(navID(start))
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate keeps the text fields' cursors in step with focus, which may
// have moved during the update.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.syncFields(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// CurrentScreen returns the id of the visible screen.
func (m *Model) CurrentScreen() string { return m.current }

// Focused returns the id of the element focused in the active scope.
func (m *Model) Focused() string {
	if top := m.nav.Top(); top != nil {
		return top.CurrentID()
	}
	return ""
}

// ModalOpen returns the name of the open modal, or "".
func (m *Model) ModalOpen() string {
	if m.modal == nil {
		return ""
	}
	return m.modal.name
}

func (m *Model) activeScreen() *focus.Scope {
	return m.screens[m.current]
}
