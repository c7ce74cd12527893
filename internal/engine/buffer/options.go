package buffer

// Option is a functional option for configuring a Store.
type Option func(*Store)

// WithTabStop sets the tab stop used to render rows.
// Values below 1 are ignored.
func WithTabStop(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.tabStop = n
		}
	}
}
