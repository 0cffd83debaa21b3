// Package clipboard copies generated posts to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/fwojciec/postcraft"
)

// Ensure Clipboard implements postcraft.Clipboard at compile time.
var _ postcraft.Clipboard = (*Clipboard)(nil)

// Clipboard writes to the system clipboard. On Linux it needs xclip, xsel,
// wl-copy or Termux to be installed.
type Clipboard struct{}

// New creates a new Clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// Supported reports whether a clipboard utility is available.
func (c *Clipboard) Supported() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard contents with text.
func (c *Clipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return postcraft.Errorf(postcraft.EINTERNAL, "no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return postcraft.Errorf(postcraft.EINTERNAL, "copy to clipboard: %v", err)
	}
	return nil
}
