// File: granularity/logging.go
// Author: momentics <momentics@gmail.com>
//
// Optional per-estimator event logging, enabled by the "estimator-logging"
// config option. Grounded on
// original_source/include/plogging.hpp's per-worker std::vector<std::string>
// event buffer and dump() routine, replacing the unbounded vector with a
// bounded ring (github.com/eapache/queue) per worker so long runs don't
// grow memory without limit.

package granularity

import "github.com/eapache/queue"

// EventType names a loggable estimator event, trimmed from
// plogging.hpp's event_type enum to the events this module actually emits.
type EventType int

const (
	EventReport EventType = iota
	EventUpdateShared
	EventPredict
)

func (t EventType) String() string {
	switch t {
	case EventReport:
		return "estim_report"
	case EventUpdateShared:
		return "estim_update_shared"
	case EventPredict:
		return "estim_predict"
	default:
		return "unknown"
	}
}

// LogEvent is one recorded estimator event.
type LogEvent struct {
	Worker     int
	Type       EventType
	Name       string
	Complexity float64
	Value      float64
	Timestamp  int64
}

// EstimatorLog is a bounded, per-worker ring of recent estimator events.
type EstimatorLog struct {
	capacity int
	buffers  *PerWorker[*queue.Queue]
}

// NewEstimatorLog creates a log retaining up to capacity events per
// worker. capacity <= 0 uses a default of 256.
func NewEstimatorLog(capacity int) *EstimatorLog {
	if capacity <= 0 {
		capacity = 256
	}
	return &EstimatorLog{
		capacity: capacity,
		buffers:  NewPerWorker[*queue.Queue](nil),
	}
}

// Record appends ev to the calling worker's ring, evicting the oldest
// event once capacity is exceeded.
func (l *EstimatorLog) Record(ev LogEvent) {
	qp := l.buffers.Mine()
	if *qp == nil {
		*qp = queue.New()
	}
	q := *qp
	q.Add(ev)
	for q.Length() > l.capacity {
		q.Remove()
	}
}

// Events returns a snapshot of every worker's buffered events, in
// worker-index order, without draining them. Intended for a single
// coordinating goroutine to call at shutdown.
func (l *EstimatorLog) Events() []LogEvent {
	var all []LogEvent
	l.buffers.Iterate(func(qp **queue.Queue) {
		if *qp == nil {
			return
		}
		q := *qp
		for i := 0; i < q.Length(); i++ {
			all = append(all, q.Get(i).(LogEvent))
		}
	})
	return all
}
