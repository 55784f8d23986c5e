package granularity

import "testing"

func TestEstimatorLogRecordsAndBoundsCapacity(t *testing.T) {
	log := NewEstimatorLog(4)
	for i := 0; i < 10; i++ {
		log.Record(LogEvent{Type: EventReport, Name: "test", Value: float64(i)})
	}
	events := log.Events()
	if len(events) != 4 {
		t.Fatalf("len(Events()) = %d, want 4 (bounded by capacity)", len(events))
	}
	// The ring should hold the 4 most recent events: values 6,7,8,9.
	if events[0].Value != 6 || events[3].Value != 9 {
		t.Fatalf("Events() = %+v, want oldest-to-newest starting at 6 ending at 9", events)
	}
}

func TestEstimatorLogDefaultCapacity(t *testing.T) {
	log := NewEstimatorLog(0)
	if log.capacity != 256 {
		t.Fatalf("NewEstimatorLog(0).capacity = %d, want 256", log.capacity)
	}
}

func TestEstimatorWithLogRecordsPredictAndReport(t *testing.T) {
	log := NewEstimatorLog(16)
	e := NewEstimator("test.logging", WithLog(log))
	e.Preload(2.0)
	e.Predict(10)
	e.Report(10, 42)

	events := log.Events()
	if len(events) < 2 {
		t.Fatalf("expected at least 2 logged events, got %d", len(events))
	}
	var sawPredict, sawReport bool
	for _, ev := range events {
		switch ev.Type {
		case EventPredict:
			sawPredict = true
		case EventReport:
			sawReport = true
		}
	}
	if !sawPredict || !sawReport {
		t.Fatalf("expected both a predict and a report event, got %+v", events)
	}
}
