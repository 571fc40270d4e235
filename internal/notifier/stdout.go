package notifier

import (
	"fmt"
	"io"
	"strings"

	"github.com/julianstephens/eatforce/internal/models"
)

// Writer prints notifications instead of delivering them. Used for --dry-run.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) Deliver(n models.Notification) error {
	body := strings.ReplaceAll(n.Body, "\n\n", " | ")
	_, err := fmt.Fprintf(s.w, "[%s] %s: %s\n", n.At.Format("15:04"), n.Title, body)
	return err
}
