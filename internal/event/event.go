// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription identifies one Subscribe call.
type Subscription int

type entry struct {
	id       Subscription
	listener Listener
}

// Dispatcher — синхронный диспетчер событий. Слушатели вызываются
// в порядке подписки, в том же тике, где событие отправлено.
type Dispatcher struct {
	listeners map[EventType][]entry
	nextID    Subscription
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]entry),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], entry{id: d.nextID, listener: listener})
	return d.nextID
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, id Subscription) {
	listeners := d.listeners[eventType]
	for i, e := range listeners {
		if e.id == id {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, e := range d.listeners[event.Type] {
		e.listener.OnEvent(event)
	}
}
