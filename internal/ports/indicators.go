package ports

import "github.com/strugee/profanity/internal/domain"

type StatusIndicator interface {
	SetActive(slot domain.SlotIndex)
	SetInactive(slot domain.SlotIndex)
	Refresh()
}

type TitleIndicator interface {
	ShowTitle()
	ShowName(partner domain.PartnerID)
	Refresh()
}

type InputLine interface {
	PutBack()
}
