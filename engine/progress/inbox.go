package progress

// Report is a single state update of a task.
type Report struct {
	TaskId string
	Done   bool
}

// Inbox accepts reports from other goroutines. The reports are applied to
// the Counter at the start of each frame.
type Inbox struct {
	reports chan Report
}

func NewInbox(capacity int) *Inbox {
	return &Inbox{reports: make(chan Report, capacity)}
}

// Send queues a report. It blocks if the inbox is full.
func (i *Inbox) Send(taskId string, done bool) {
	i.reports <- Report{TaskId: taskId, Done: done}
}

// DrainInto applies all queued reports to counter without blocking.
func (i *Inbox) DrainInto(counter *Counter) {
	for {
		select {
		case report := <-i.reports:
			counter.Report(report.TaskId, report.Done)

		default:
			return
		}
	}
}

func drainInboxSystem(inbox *Inbox, counter *Counter) {
	inbox.DrainInto(counter)
}
