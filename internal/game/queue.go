package game

// Shop floor geometry in scene pixels. Customers enter from the right and
// walk left toward the counter.
const (
	SceneWidth    = 900
	SceneHeight   = 600
	CounterX      = 350
	CounterY      = SceneHeight - 220
	ServiceX      = CounterX + 90
	SpawnX        = SceneWidth + 50
	CustomerWidth = 60
	QueueSpacing  = 30
)

// Customer is one shopper in the queue.
type Customer struct {
	ID        int
	Order     Order
	X         float64
	Speed     float64
	AtCounter bool
	// Armed is set once the session started this customer's countdown.
	Armed bool
	Hair  int
	Shirt int
}

// Queue is the FIFO line in front of the counter. Only the head may be
// served, and only once it has reached the counter.
type Queue struct {
	customers []*Customer
	max       int
}

func NewQueue(max int) *Queue {
	if max < 1 {
		max = 1
	}
	return &Queue{max: max}
}

// Push appends c at the tail. A full queue drops c and returns false.
func (q *Queue) Push(c *Customer) bool {
	if c == nil || len(q.customers) >= q.max {
		return false
	}
	q.customers = append(q.customers, c)
	return true
}

func (q *Queue) Len() int {
	return len(q.customers)
}

func (q *Queue) Cap() int {
	return q.max
}

func (q *Queue) Full() bool {
	return len(q.customers) >= q.max
}

func (q *Queue) Head() *Customer {
	if len(q.customers) == 0 {
		return nil
	}
	return q.customers[0]
}

// Active returns the head customer once it stands at the counter.
func (q *Queue) Active() *Customer {
	head := q.Head()
	if head == nil || !head.AtCounter {
		return nil
	}
	return head
}

// RemoveHead drops the head customer; the next one becomes head and starts
// walking to the counter on the following Step.
func (q *Queue) RemoveHead() *Customer {
	if len(q.customers) == 0 {
		return nil
	}
	head := q.customers[0]
	q.customers[0] = nil
	q.customers = q.customers[1:]
	return head
}

func (q *Queue) Clear() {
	q.customers = nil
}

// Customers returns the queue head first.
func (q *Queue) Customers() []*Customer {
	return append([]*Customer(nil), q.customers...)
}

// Step moves every customer one animation step, head first, so a waiting
// customer always sees where the one ahead already stands this step. It
// returns the head customer on the step it first reaches the counter.
func (q *Queue) Step() *Customer {
	var arrived *Customer
	for i, c := range q.customers {
		if i == 0 {
			if c.AtCounter {
				continue
			}
			if stepToward(c, ServiceX) {
				c.AtCounter = true
				arrived = c
			}
			continue
		}
		front := q.customers[i-1]
		stepToward(c, front.X+CustomerWidth+QueueSpacing)
	}
	return arrived
}

// stepToward walks c left toward target and reports whether c stands on
// target afterwards. Customers never walk backwards.
func stepToward(c *Customer, target float64) bool {
	if c.X > target {
		c.X -= c.Speed
		if c.X < target {
			c.X = target
		}
	}
	return c.X <= target
}
