package search

// Visibility tracks whether the results surface is open. The surface is
// only shown while the session has something to show.
type Visibility struct {
	open bool
}

func (v *Visibility) Open() {
	v.open = true
}

// Close hides the surface and resets the session.
func (v *Visibility) Close(s *Session) {
	v.open = false
	s.Reset()
}

func (v *Visibility) OnEscape(s *Session) {
	v.Close(s)
}

func (v *Visibility) OnOutsideClick(s *Session) {
	v.Close(s)
}

// IsOpen reports the open flag alone, regardless of content.
func (v Visibility) IsOpen() bool {
	return v.open
}

// Visible reports whether the surface should be drawn.
func (v Visibility) Visible(s Session) bool {
	return v.open && !s.Empty()
}

// Enforce closes an open surface whose session has neither query text nor
// results.
func (v *Visibility) Enforce(s *Session) {
	if v.open && s.Empty() {
		v.Close(s)
	}
}
