package application

import (
	"fmt"

	"github.com/strugee/profanity/internal/domain"
)

var helpLines = []string{
	"  Commands:",
	"    /help                : This help.",
	"    /connect user@host   : Login to jabber.",
	"    /close               : Close a chat window.",
	"    /msg user@host mesg  : Send mesg to user.",
	"    /quit                : Quit Profanity.",
	"  Shortcuts:",
	"    F1                   : This console window.",
	"    F2-10                : Chat windows.",
	"    PgUp/PgDn            : Scroll the current window.",
}

func (s *Service) consoleWrite(msg string, style domain.Style) {
	if s.renderer == nil {
		s.logger.Warn("console write before init", "message", msg)
		return
	}
	_ = s.renderer.WriteTimestampPrefix(domain.ConsoleSlot)
	_ = s.renderer.WriteStyledLine(domain.ConsoleSlot, msg, style)
}

func (s *Service) ConsoleShow(msg string) {
	s.consoleWrite(msg, domain.StylePlain)
}

func (s *Service) ConsoleGood(msg string) {
	s.consoleWrite(msg, domain.StyleGood)
}

func (s *Service) ConsoleBad(msg string) {
	s.consoleWrite(msg, domain.StyleBad)
}

func (s *Service) ConsoleHighlight(msg string) {
	s.consoleWrite(msg, domain.StyleHighlight)
}

func (s *Service) ConsoleBadCommand(cmd string) {
	s.ConsoleShow(fmt.Sprintf("Unknown command: %s", cmd))
}

func (s *Service) ConsoleBadConnectUsage() {
	s.ConsoleShow("Usage: /connect user@host")
}

func (s *Service) ConsoleAlreadyConnected() {
	s.ConsoleShow("You are either connected already, or a login is in process.")
}

func (s *Service) ConsoleNotConnected() {
	s.ConsoleShow("You are not currently connected.")
}

func (s *Service) ConsoleBadMessageUsage() {
	s.ConsoleShow("Usage: /msg user@host message")
}

func (s *Service) ConsoleHelp() {
	s.consoleWrite("Help:", domain.StyleBold)
	for _, line := range helpLines {
		s.ConsoleShow(line)
	}
}
