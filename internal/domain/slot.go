package domain

import "fmt"

// SlotIndex addresses one of the fixed display windows. Slot 0 is the console.
type SlotIndex int

const (
	SlotCount               = 10
	ConsoleSlot   SlotIndex = 0
	FirstChatSlot SlotIndex = 1
	LastChatSlot  SlotIndex = SlotCount - 1
)

// ConsoleID is the partner id permanently bound to the console slot.
const ConsoleID PartnerID = "_cons"

func (i SlotIndex) Valid() bool {
	return i >= ConsoleSlot && i <= LastChatSlot
}

func (i SlotIndex) IsConsole() bool {
	return i == ConsoleSlot
}

func (i SlotIndex) IsChat() bool {
	return i >= FirstChatSlot && i <= LastChatSlot
}

// Validate reports ErrInvalidSlotIndex for indexes outside 0..9.
func (i SlotIndex) Validate() error {
	if !i.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSlotIndex, int(i))
	}
	return nil
}

// Label is the 1-based number shown in the status bar, matching the F-key.
func (i SlotIndex) Label() string {
	return fmt.Sprintf("%d", int(i)+1)
}
