package editor

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// CopyReport puts the board's text report on the system clipboard.
func (s *Session) CopyReport() error {
	report := s.board.Report()
	if err := writeClipboard(report); err != nil {
		return fmt.Errorf("copy report: %w", err)
	}
	s.activity.Add(s.frame, paintColor(s.paint), "report copied")
	s.log.WithField("bytes", len(report)).Info("board report copied to clipboard")
	return nil
}
