package console

import "sync/atomic"

// counters tracks console activity
type counters struct {
	dispatched    atomic.Uint64
	discarded     atomic.Uint64
	failed        atomic.Uint64
	bytes         atomic.Uint64
	replaced      atomic.Uint64
	releaseFailed atomic.Uint64
}

func (s *counters) incrementDispatched()    { s.dispatched.Add(1) }
func (s *counters) incrementDiscarded()     { s.discarded.Add(1) }
func (s *counters) incrementFailed()        { s.failed.Add(1) }
func (s *counters) addBytes(n int)          { s.bytes.Add(uint64(n)) }
func (s *counters) incrementReplaced()      { s.replaced.Add(1) }
func (s *counters) incrementReleaseFailed() { s.releaseFailed.Add(1) }

// Snapshot is a point-in-time copy of the console counters
type Snapshot struct {
	// Dispatched counts writes delivered to an installed transport
	Dispatched uint64
	// Discarded counts writes absorbed by the fallback
	Discarded uint64
	// Failed counts writes that panicked
	Failed uint64
	// BytesWritten counts bytes accepted by installed transports
	BytesWritten uint64
	// Replaced counts Replace calls
	Replaced uint64
	// ReleaseFailed counts release hooks that returned an error
	ReleaseFailed uint64
}

func (s *counters) snapshot() Snapshot {
	return Snapshot{
		Dispatched:    s.dispatched.Load(),
		Discarded:     s.discarded.Load(),
		Failed:        s.failed.Load(),
		BytesWritten:  s.bytes.Load(),
		Replaced:      s.replaced.Load(),
		ReleaseFailed: s.releaseFailed.Load(),
	}
}
