package job

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Monitor receives the progress of a job. Worked may be called from several
// goroutines at once.
type Monitor interface {
	SetMaxWork(n int)
	Worked()
}

type nopMonitor struct{}

func (nopMonitor) SetMaxWork(int) {}
func (nopMonitor) Worked()        {}

// LogMonitor logs every tenth of the total work.
type LogMonitor struct {
	lock  sync.Mutex
	max   int
	done  int
	steps int
}

func (l *LogMonitor) SetMaxWork(n int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.max = n
	l.done = 0
	l.steps = 0
}

func (l *LogMonitor) Worked() {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.done++
	if l.max <= 0 {
		return
	}
	if step := l.done * 10 / l.max; step > l.steps {
		l.steps = step
		logrus.Infof("Processed %d of %d features (%d%%).", l.done, l.max, step*10)
	}
}

// Done returns the work reported so far.
func (l *LogMonitor) Done() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.done
}
