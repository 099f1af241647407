package ui

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/langtally/internal/util"
)

// Stats is updated by PageProgress and read by the bar decorators.
type Stats struct {
	Pages  atomic.Int64
	Titles atomic.Int64
	Bytes  atomic.Int64
}

func (s *Stats) Summary(elapsed time.Duration) string {
	return fmt.Sprintf("Pages: %d, Titles: %d, Data: %s, Time: %s",
		s.Pages.Load(), s.Titles.Load(), util.Human(s.Bytes.Load()), elapsed.Round(time.Millisecond))
}
