package headless

import (
	"sort"
	"time"
)

// clock is a virtual event-loop timer queue.
type clock struct {
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	at        time.Duration
	seq       int
	fn        func()
	cancelled bool
}

// AfterFunc implements dom.Scheduler on the virtual clock.
func (c *clock) AfterFunc(d time.Duration, fn func()) func() {
	c.seq++
	t := &timer{at: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return func() { t.cancelled = true }
}

// Advance moves the clock forward by d, running due timers in order.
func (c *clock) Advance(d time.Duration) {
	target := c.now + d
	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.at
		t.fn()
	}
	c.now = target
}

// Pending reports how many timers are still waiting to fire.
func (c *clock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (c *clock) nextDue(target time.Duration) *timer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	c.timers = live
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at != c.timers[j].at {
			return c.timers[i].at < c.timers[j].at
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	t := c.timers[0]
	if t.at > target {
		return nil
	}
	c.timers = c.timers[1:]
	return t
}
