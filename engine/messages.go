package engine

// MessageLog keeps the newest lines for the HUD
type MessageLog struct {
	lines []string
	limit int
}

// NewMessageLog creates a log keeping at most limit lines
func NewMessageLog(limit int) *MessageLog {
	return &MessageLog{limit: limit}
}

// Add appends a line, evicting the oldest past the limit
func (l *MessageLog) Add(line string) {
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Lines returns lines oldest first
func (l *MessageLog) Lines() []string {
	return l.lines
}

// Clear drops every line
func (l *MessageLog) Clear() {
	l.lines = l.lines[:0]
}
