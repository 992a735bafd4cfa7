package application

import "github.com/strugee/profanity/internal/domain"

type WindowSnapshot struct {
	Slot    domain.SlotIndex
	Partner domain.PartnerID
	Focused bool
	Lines   []string
}

// Snapshot lists the console and every bound chat window in slot order.
func (s *Service) Snapshot() []WindowSnapshot {
	if s.pool == nil {
		return nil
	}

	snapshots := make([]WindowSnapshot, 0, domain.SlotCount)
	for i := domain.ConsoleSlot; i <= domain.LastChatSlot; i++ {
		if !s.pool.IsBound(i) {
			continue
		}
		buf, _ := s.pool.buffer(i)
		snapshots = append(snapshots, WindowSnapshot{
			Slot:    i,
			Partner: s.pool.slots[i].partner,
			Focused: i == s.focus,
			Lines:   buf.Lines(),
		})
	}

	return snapshots
}
