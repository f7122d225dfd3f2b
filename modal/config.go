package modal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Direction is the screen edge a modal slides in from and out to.
type Direction string

const (
	FromTop    Direction = "top"
	FromBottom Direction = "bottom"
	FromLeft   Direction = "left"
	FromRight  Direction = "right"
)

const (
	DefaultTransitionDuration = 250 * time.Millisecond
	DefaultMaskColor          = "rgba(0, 0, 0, 0.8)"
)

// Config is the per-instance configuration of a modal. Presentation fields
// (MaskColor, Fullscreen, ClassName) are passed through to the view as-is.
type Config struct {
	FromDirection      Direction
	TransitionDuration time.Duration

	// Closable false suppresses every close request.
	Closable bool

	// The close button is drawn only when HasCloseButton is set, the modal
	// is closable and CloseIcon is not empty.
	HasCloseButton bool
	CloseIcon      string

	MaskColor  string
	Fullscreen bool
	ClassName  string

	// CloseOnLocationChange requests a close whenever the navigation path
	// changes between two updates.
	CloseOnLocationChange bool

	// OnCloseClick runs before a close request is emitted.
	OnCloseClick func()
}

// DefaultConfig returns the configuration used before options are applied.
func DefaultConfig() Config {
	return Config{
		FromDirection:      FromBottom,
		TransitionDuration: DefaultTransitionDuration,
		Closable:           true,
		HasCloseButton:     true,
		MaskColor:          DefaultMaskColor,
	}
}

// Option adjusts a Config.
type Option func(*Config)

func WithDirection(d Direction) Option {
	return func(c *Config) { c.FromDirection = d }
}

// WithTransitionDuration sets the animation and timer duration. Negative
// values are treated as zero.
func WithTransitionDuration(d time.Duration) Option {
	return func(c *Config) {
		if d < 0 {
			d = 0
		}
		c.TransitionDuration = d
	}
}

func WithClosable(closable bool) Option {
	return func(c *Config) { c.Closable = closable }
}

// Unclosable is shorthand for WithClosable(false).
func Unclosable() Option { return WithClosable(false) }

func WithCloseButton(show bool) Option {
	return func(c *Config) { c.HasCloseButton = show }
}

func WithCloseIcon(icon string) Option {
	return func(c *Config) { c.CloseIcon = icon }
}

func WithMaskColor(color string) Option {
	return func(c *Config) { c.MaskColor = color }
}

func WithFullscreen(fullscreen bool) Option {
	return func(c *Config) { c.Fullscreen = fullscreen }
}

func WithClassName(name string) Option {
	return func(c *Config) { c.ClassName = name }
}

func WithCloseOnLocationChange(enabled bool) Option {
	return func(c *Config) { c.CloseOnLocationChange = enabled }
}

func WithOnCloseClick(fn func()) Option {
	return func(c *Config) { c.OnCloseClick = fn }
}

func applyOptions(c *Config, opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
}

// Content is what a modal shows in its content region.
type Content interface {
	View() string
}

// Interactive content also receives the key messages that reach the
// modal's panel.
type Interactive interface {
	Content
	Update(msg tea.Msg) tea.Cmd
}

// renderable reports whether c produces a content region at all.
func renderable(c Content) bool {
	return c != nil && c.View() != ""
}

// Entry is what the application store holds for one modal name. The zero
// Entry describes an inactive modal with no content.
type Entry struct {
	// Options are merged over the modal's base configuration on every
	// update.
	Options []Option
	Content Content
	Active  bool
}

// ReadModel looks up the store entry for a modal name.
type ReadModel func(name string) Entry
