package events

import "github.com/atomicstack/tvnav/internal/logging"

type FocusTracer struct{}

type ScopeTracer struct{}

var (
	Focus = FocusTracer{}
	Scope = ScopeTracer{}
)

func (FocusTracer) Register(scope, id string, replaced bool) {
	logging.Trace("focus.register", map[string]interface{}{"scope": scope, "id": id, "replaced": replaced})
}

func (FocusTracer) Set(scope, id string) {
	logging.Trace("focus.set", map[string]interface{}{"scope": scope, "id": id})
}

func (FocusTracer) Reject(scope, id string) {
	logging.Trace("focus.reject", map[string]interface{}{"scope": scope, "id": id})
}

func (FocusTracer) Move(scope, from, to, direction string) {
	logging.Trace("focus.move", map[string]interface{}{
		"scope":     scope,
		"from":      from,
		"to":        to,
		"direction": direction,
	})
}

func (FocusTracer) Saturate(scope, id, direction string) {
	logging.Trace("focus.saturate", map[string]interface{}{"scope": scope, "id": id, "direction": direction})
}

func (FocusTracer) Fallback(scope, removed, next string) {
	logging.Trace("focus.fallback", map[string]interface{}{"scope": scope, "removed": removed, "next": next})
}

func (FocusTracer) Select(scope, id, kind, target string) {
	logging.Trace("focus.select", map[string]interface{}{
		"scope":  scope,
		"id":     id,
		"kind":   kind,
		"target": target,
	})
}

func (FocusTracer) Back(scope string) {
	logging.Trace("focus.back", map[string]interface{}{"scope": scope})
}

func (FocusTracer) BackUnhandled(depth int) {
	logging.Trace("focus.back.unhandled", map[string]interface{}{"depth": depth})
}

func (FocusTracer) Panic(scope, action, value string) {
	logging.Trace("focus.panic", map[string]interface{}{"scope": scope, "action": action, "value": value})
}

func (ScopeTracer) Push(name string, depth int) {
	logging.Trace("scope.push", map[string]interface{}{"scope": name, "depth": depth})
}

func (ScopeTracer) Pop(name string, depth int) {
	logging.Trace("scope.pop", map[string]interface{}{"scope": name, "depth": depth})
}
