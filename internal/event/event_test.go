package event

import "testing"

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var got []string

	first := d.Subscribe(WaveEnded, ListenerFunc(func(Event) { got = append(got, "a") }))
	d.Subscribe(WaveEnded, ListenerFunc(func(Event) { got = append(got, "b") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { got = append(got, "other") }))

	d.Dispatch(Event{Type: WaveEnded})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("dispatch order = %v", got)
	}

	d.Unsubscribe(WaveEnded, first)
	got = nil
	d.Dispatch(Event{Type: WaveEnded, Data: WaveData{Index: 1}})
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("after unsubscribe = %v", got)
	}
}
