package countdown

import (
	"fmt"
	"io"
)

// ConsoleSink renders the four display slots as a single rewritten line,
// for terminals where the full-screen view is unwanted (CI, dumb
// terminals, --plain).
type ConsoleSink struct {
	w     io.Writer
	slots map[Slot]string
}

// NewConsoleSink writes countdown lines to w.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		w: w,
		slots: map[Slot]string{
			SlotDays:    "00",
			SlotHours:   "00",
			SlotMinutes: "00",
			SlotSeconds: "00",
		},
	}
}

// SetSlot stores the value and redraws the line once the seconds slot
// lands; the engine writes slots in day→second order every tick.
func (s *ConsoleSink) SetSlot(slot Slot, value string) {
	s.slots[slot] = value
	if slot == SlotSeconds {
		fmt.Fprintf(s.w, "\r%sd %sh %sm %ss ",
			s.slots[SlotDays], s.slots[SlotHours], s.slots[SlotMinutes], s.slots[SlotSeconds])
	}
}

// Finish replaces the countdown line with the terminal message.
func (s *ConsoleSink) Finish(message string) {
	fmt.Fprintf(s.w, "\r%s\n", message)
}
