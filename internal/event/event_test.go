package event

import (
	"testing"

	"code-defense/internal/component"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(GoldChanged, a)
	d.Subscribe(GoldChanged, b)
	d.Dispatch(Event{Type: GoldChanged, Data: 10})
	d.Dispatch(Event{Type: LivesChanged, Data: 3})
	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("expected one event each, got %d and %d", len(a.got), len(b.got))
	}

	d.Unsubscribe(GoldChanged, a)
	d.Dispatch(Event{Type: GoldChanged, Data: 20})
	if len(a.got) != 1 || len(b.got) != 2 {
		t.Fatalf("expected only b to receive after unsubscribe, got %d and %d", len(a.got), len(b.got))
	}
}

func TestCallbacks(t *testing.T) {
	d := NewDispatcher()
	var gold, lives, wave, score []int
	var rewards []int
	var statuses []component.Status
	cb := &Callbacks{
		OnGoldChange:   func(v int) { gold = append(gold, v) },
		OnLivesChange:  func(v int) { lives = append(lives, v) },
		OnWaveChange:   func(v int) { wave = append(wave, v) },
		OnScoreChange:  func(v int) { score = append(score, v) },
		OnStatusChange: func(s component.Status) { statuses = append(statuses, s) },
		OnBugKilled:    func(r int) { rewards = append(rewards, r) },
	}
	cb.Attach(d)

	d.Dispatch(Event{Type: GoldChanged, Data: 515})
	d.Dispatch(Event{Type: ScoreChanged, Data: 150})
	d.Dispatch(Event{Type: BugKilled, Data: BugKilledData{Reward: 15}})
	d.Dispatch(Event{Type: BugKilled, Data: BugKilledData{Reward: 30}})
	d.Dispatch(Event{Type: LivesChanged, Data: 19})
	d.Dispatch(Event{Type: WaveChanged, Data: 2})
	d.Dispatch(Event{Type: StatusChanged, Data: component.StatusPaused})

	if len(gold) != 1 || gold[0] != 515 || score[0] != 150 || lives[0] != 19 || wave[0] != 2 {
		t.Fatalf("unexpected counters gold=%v score=%v lives=%v wave=%v", gold, score, lives, wave)
	}
	if len(rewards) != 2 || rewards[1] != 30 {
		t.Fatalf("expected one callback per kill, got %v", rewards)
	}
	if statuses[0] != component.StatusPaused {
		t.Fatalf("unexpected status %v", statuses)
	}

	d.Unsubscribe(GoldChanged, cb)
	d.Dispatch(Event{Type: GoldChanged, Data: 1})
	if len(gold) != 1 {
		t.Fatalf("expected no callbacks after detach")
	}
}

func TestCallbacksSkipNil(t *testing.T) {
	d := NewDispatcher()
	(&Callbacks{}).Attach(d)
	d.Dispatch(Event{Type: BugKilled, Data: BugKilledData{Reward: 1}})
}

type unsubscriber struct {
	d    *Dispatcher
	self Listener
	n    int
}

func (u *unsubscriber) OnEvent(Event) {
	u.n++
	u.d.Unsubscribe(GoldChanged, u.self)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	u := &unsubscriber{d: d}
	u.self = u
	after := &recorder{}
	d.Subscribe(GoldChanged, u)
	d.Subscribe(GoldChanged, after)

	d.Dispatch(Event{Type: GoldChanged, Data: 1})
	d.Dispatch(Event{Type: GoldChanged, Data: 2})
	if u.n != 1 {
		t.Fatalf("expected the listener to leave after one event, got %d", u.n)
	}
	if len(after.got) != 2 {
		t.Fatalf("expected later listeners to keep receiving, got %d", len(after.got))
	}
}
