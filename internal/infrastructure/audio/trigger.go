package audio

// SwitchOnce changes the music to Track the first time the menu is no longer
// visible. After that it never switches again.
type SwitchOnce struct {
	Track    string
	switched bool
}

// Update checks the menu visibility for this frame
func (s *SwitchOnce) Update(jb *Jukebox, menuVisible bool) error {
	if menuVisible || s.switched || s.Track == "" {
		return nil
	}
	if err := jb.ChangeBGM(s.Track); err != nil {
		return err
	}
	s.switched = true
	return nil
}

// Switched reports whether the switch already happened
func (s *SwitchOnce) Switched() bool {
	return s.switched
}
