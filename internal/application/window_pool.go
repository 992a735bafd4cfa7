package application

import (
	"fmt"

	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
)

type slot struct {
	partner    domain.PartnerID
	buffer     ports.Buffer
	lastActive uint64
}

// WindowPool is the fixed set of display slots. Slot 0 is bound to the
// console for its whole lifetime; slots 1..9 are bound to partners on
// first contact and freed on close. Buffers are allocated once and reused.
type WindowPool struct {
	slots  [domain.SlotCount]slot
	status ports.StatusIndicator
	seq    uint64
}

func NewWindowPool(term ports.Terminal, status ports.StatusIndicator) *WindowPool {
	p := &WindowPool{status: status}
	for i := range p.slots {
		p.slots[i].buffer = term.NewBuffer()
	}
	p.slots[domain.ConsoleSlot].partner = domain.ConsoleID

	return p
}

// ResolveOrCreate returns the chat slot bound to partner, binding the first
// free slot when none matches.
func (p *WindowPool) ResolveOrCreate(partner domain.PartnerID) (domain.SlotIndex, error) {
	if partner.IsEmpty() {
		return 0, domain.ErrEmptyPartner
	}

	if slot, ok := p.find(partner); ok {
		return slot, nil
	}

	for i := domain.FirstChatSlot; i <= domain.LastChatSlot; i++ {
		if p.slots[i].partner != "" {
			continue
		}
		p.slots[i].partner = partner
		p.slots[i].buffer.Clear()
		return i, nil
	}

	return 0, fmt.Errorf("bind window for %s: %w", partner, domain.ErrPoolExhausted)
}

func (p *WindowPool) find(partner domain.PartnerID) (domain.SlotIndex, bool) {
	for i := domain.FirstChatSlot; i <= domain.LastChatSlot; i++ {
		if p.slots[i].partner == partner {
			return i, true
		}
	}
	return 0, false
}

func (p *WindowPool) IsBound(i domain.SlotIndex) bool {
	if !i.Valid() {
		return false
	}
	return p.slots[i].partner != ""
}

func (p *WindowPool) Partner(i domain.SlotIndex) (domain.PartnerID, error) {
	if err := i.Validate(); err != nil {
		return "", err
	}
	return p.slots[i].partner, nil
}

// Close frees a chat slot: the partner is cleared, the buffer wiped and the
// status indicator marked inactive. The console slot is never closed.
func (p *WindowPool) Close(i domain.SlotIndex) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if i.IsConsole() {
		return domain.ErrCloseConsole
	}

	p.slots[i].partner = ""
	p.slots[i].lastActive = 0
	p.slots[i].buffer.Clear()
	p.status.SetInactive(i)

	return nil
}

// Touch records activity on a slot for least-recently-active eviction.
func (p *WindowPool) Touch(i domain.SlotIndex) {
	if !i.Valid() {
		return
	}
	p.seq++
	p.slots[i].lastActive = p.seq
}

// LeastRecentlyActive picks the bound chat slot with the oldest activity,
// skipping exclude. Ties go to the lowest index.
func (p *WindowPool) LeastRecentlyActive(exclude domain.SlotIndex) (domain.SlotIndex, bool) {
	var (
		found  domain.SlotIndex
		oldest uint64
		ok     bool
	)
	for i := domain.FirstChatSlot; i <= domain.LastChatSlot; i++ {
		if i == exclude || p.slots[i].partner == "" {
			continue
		}
		if !ok || p.slots[i].lastActive < oldest {
			found = i
			oldest = p.slots[i].lastActive
			ok = true
		}
	}
	return found, ok
}

func (p *WindowPool) buffer(i domain.SlotIndex) (ports.Buffer, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return p.slots[i].buffer, nil
}
