package world

// Messages is the combat log: a FIFO where only the head is shown. The head
// leaves the queue only when the player acknowledges it, and gameplay keys
// are ignored while anything is queued.
type Messages struct {
	items []string
}

func NewMessages() *Messages {
	return &Messages{items: make([]string, 0, 8)}
}

// Add appends a message to the tail of the queue.
func (m *Messages) Add(msg string) {
	m.items = append(m.items, msg)
}

// Current returns the head of the queue.
func (m *Messages) Current() (string, bool) {
	if len(m.items) == 0 {
		return "", false
	}
	return m.items[0], true
}

// Advance drops the head of the queue. It is a no-op on an empty queue.
func (m *Messages) Advance() {
	if len(m.items) == 0 {
		return
	}
	m.items[0] = ""
	m.items = m.items[1:]
}

func (m *Messages) Len() int      { return len(m.items) }
func (m *Messages) Empty() bool   { return len(m.items) == 0 }
func (m *Messages) All() []string { return append([]string(nil), m.items...) }
