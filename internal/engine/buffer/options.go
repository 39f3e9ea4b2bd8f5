package buffer

// DefaultTabWidth is the tab stop width used when none is configured.
const DefaultTabWidth = 8

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabWidth sets the buffer's tab width.
// Values below 1 are ignored.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}
