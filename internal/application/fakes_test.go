package application

import (
	"strings"

	"github.com/strugee/profanity/internal/domain"
	"github.com/strugee/profanity/internal/ports"
)

type segment struct {
	text  string
	style domain.Style
}

type fakeBuffer struct {
	segments []segment
	clears   int
	repaints int
	scrolled int
}

func (b *fakeBuffer) Write(text string, style domain.Style) {
	b.segments = append(b.segments, segment{text: text, style: style})
}

func (b *fakeBuffer) Clear() {
	b.segments = nil
	b.clears++
}

func (b *fakeBuffer) Repaint() {
	b.repaints++
}

func (b *fakeBuffer) Scroll(delta int) {
	b.scrolled += delta
}

func (b *fakeBuffer) Lines() []string {
	var sb strings.Builder
	for _, seg := range b.segments {
		sb.WriteString(seg.text)
	}
	text := strings.TrimSuffix(sb.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

type fakeTerminal struct {
	buffers []*fakeBuffer
	inits   int
	closes  int
	initErr error
}

var _ ports.Terminal = (*fakeTerminal)(nil)

func (t *fakeTerminal) Init() error {
	t.inits++
	return t.initErr
}

func (t *fakeTerminal) Close() error {
	t.closes++
	return nil
}

func (t *fakeTerminal) NewBuffer() ports.Buffer {
	buf := &fakeBuffer{}
	t.buffers = append(t.buffers, buf)
	return buf
}

type recordingStatus struct {
	active    map[domain.SlotIndex]bool
	refreshes int
}

func newRecordingStatus() *recordingStatus {
	return &recordingStatus{active: map[domain.SlotIndex]bool{}}
}

func (s *recordingStatus) SetActive(slot domain.SlotIndex)   { s.active[slot] = true }
func (s *recordingStatus) SetInactive(slot domain.SlotIndex) { s.active[slot] = false }
func (s *recordingStatus) Refresh()                          { s.refreshes++ }

type recordingTitle struct {
	showingTitle bool
	name         domain.PartnerID
	refreshes    int
}

func (t *recordingTitle) ShowTitle() {
	t.showingTitle = true
	t.name = ""
}

func (t *recordingTitle) ShowName(partner domain.PartnerID) {
	t.showingTitle = false
	t.name = partner
}

func (t *recordingTitle) Refresh() { t.refreshes++ }

type fixedFormatter struct {
	value string
}

func (f fixedFormatter) Now() string {
	return f.value
}

type harness struct {
	term   *fakeTerminal
	status *recordingStatus
	title  *recordingTitle
	svc    *Service
}

func newHarness(opts ...Option) *harness {
	h := &harness{
		term:   &fakeTerminal{},
		status: newRecordingStatus(),
		title:  &recordingTitle{},
	}
	h.svc = NewService(h.term, h.status, h.title, fixedFormatter{value: "12:00:00"}, opts...)
	return h
}

func (h *harness) buffer(i domain.SlotIndex) *fakeBuffer {
	return h.term.buffers[i]
}
