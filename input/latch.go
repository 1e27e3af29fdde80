package input

// Latch turns a held key into a single press. Fire returns true on the
// first frame the key is down and false until it has been released.
type Latch struct {
	handled bool
}

func (l *Latch) Fire(down bool) bool {
	if !down {
		l.handled = false
		return false
	}
	if l.handled {
		return false
	}
	l.handled = true
	return true
}
