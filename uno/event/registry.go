package event

// registry keeps listeners in the order they subscribed. Every emitter embeds
// one and type-asserts the listeners back when it emits.
type registry struct {
	lastID  int
	entries []subscription
}

type subscription struct {
	id       int
	listener interface{}
}

// add subscribes listener and returns the function that unsubscribes it.
// Calling the returned function more than once is harmless.
func (r *registry) add(listener interface{}) func() {
	r.lastID++
	id := r.lastID
	r.entries = append(r.entries, subscription{id: id, listener: listener})
	return func() {
		r.remove(id)
	}
}

func (r *registry) remove(id int) {
	for i, entry := range r.entries {
		if entry.id == id {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return
		}
	}
}

// each visits the listeners subscribed when the call started, so a listener
// may unsubscribe while it is being notified.
func (r *registry) each(notify func(listener interface{})) {
	entries := r.entries
	for _, entry := range entries {
		notify(entry.listener)
	}
}
