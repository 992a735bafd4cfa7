package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartnerIDBare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		partner PartnerID
		want    PartnerID
	}{
		{name: "no resource", partner: "alice@host", want: "alice@host"},
		{name: "resource", partner: "alice@host/laptop", want: "alice@host"},
		{name: "nested resource", partner: "alice@host/a/b", want: "alice@host"},
		{name: "leading separator", partner: "/alice@host/phone", want: "alice@host"},
		{name: "empty", partner: "", want: ""},
		{name: "only separator", partner: "/", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.partner.Bare())
		})
	}
}

func TestPartnerIDResource(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "phone", PartnerID("alice@host/phone").Resource())
	assert.Equal(t, "", PartnerID("alice@host").Resource())
}

func TestPartnerIDIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, PartnerID("").IsEmpty())
	assert.True(t, PartnerID("  ").IsEmpty())
	assert.False(t, ConsoleID.IsEmpty())
}

func TestSlotIndexValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		slot    SlotIndex
		wantErr bool
	}{
		{name: "console", slot: ConsoleSlot},
		{name: "first chat", slot: FirstChatSlot},
		{name: "last chat", slot: LastChatSlot},
		{name: "negative", slot: -1, wantErr: true},
		{name: "past end", slot: SlotCount, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.slot.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidSlotIndex))
		})
	}
}

func TestSlotIndexKinds(t *testing.T) {
	t.Parallel()

	assert.True(t, ConsoleSlot.IsConsole())
	assert.False(t, ConsoleSlot.IsChat())
	assert.True(t, SlotIndex(5).IsChat())
	assert.False(t, SlotIndex(10).IsChat())
	assert.Equal(t, "1", ConsoleSlot.Label())
	assert.Equal(t, "10", LastChatSlot.Label())
}

func TestColorPairString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", ColorError.String())
	assert.Equal(t, "unknown", ColorPair(42).String())
}
