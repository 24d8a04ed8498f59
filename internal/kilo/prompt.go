package kilo

// PromptCallback observes every key processed by prompt, in addition to
// whatever termination behavior the key triggers. Incremental search's
// state (last match, direction, highlight overlay) lives entirely on the
// callback's own captured state, reset fresh each time a search begins —
// there are no shared globals behind the observer (spec §9).
type PromptCallback func(buf []byte, key int)

// prompt drives its own small input loop, reusing RefreshScreen with the
// status message set to format with the in-progress buffer substituted
// for %s. It returns the finished buffer and true, or ("", false) if the
// prompt was cancelled with ESC.
func (e *Editor) prompt(format string, cb PromptCallback) (string, bool) {
	buf := make([]byte, 0, 128)

	for {
		e.SetStatusMessage(format, string(buf))
		e.RefreshScreen()

		key, err := e.dec.NextKey()
		if err != nil {
			e.Die(err)
		}

		switch key {
		case KeyDel, KeyBackspace, Ctrl('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case KeyEsc:
			e.SetStatusMessage("")
			if cb != nil {
				cb(buf, key)
			}
			return "", false

		case KeyEnter:
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if cb != nil {
					cb(buf, key)
				}
				return string(buf), true
			}

		default:
			if key >= 0x20 && key < 128 {
				buf = append(buf, byte(key))
			}
		}

		if cb != nil {
			cb(buf, key)
		}
	}
}
