package events

import "github.com/atomicstack/tvnav/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type CatalogTracer struct{}

type StoreTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Catalog = CatalogTracer{}
	Store   = StoreTracer{}
)

func (UITracer) ScreenSwitch(from, to string) {
	logging.Trace("screen.switch", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) ModalOpen(name string) {
	logging.Trace("modal.open", map[string]interface{}{"modal": name})
}

func (UITracer) ModalClose(name string) {
	logging.Trace("modal.close", map[string]interface{}{"modal": name})
}

func (UITracer) Scroll(screen string, offset int) {
	logging.Trace("screen.scroll", map[string]interface{}{"screen": screen, "offset": offset})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (CatalogTracer) Loaded(source string, apps, products int) {
	logging.Trace("catalog.loaded", map[string]interface{}{"source": source, "apps": apps, "products": products})
}

func (CatalogTracer) Error(source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.error", map[string]interface{}{"source": source, "error": err.Error()})
}

func (StoreTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"op": op, "error": err.Error()})
}
