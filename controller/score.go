package controller

import "strconv"

// Counter is the score source of truth; Text is a projection of it.
type Counter struct {
	value int
}

func (c *Counter) Add(n int) {
	if c == nil {
		return
	}
	c.value += n
}

func (c *Counter) Value() int {
	if c == nil {
		return 0
	}
	return c.value
}

func (c *Counter) Text() string {
	return strconv.Itoa(c.Value())
}
