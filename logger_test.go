package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Window(t *testing.T) {
	assert := assert.New(t)

	l := NewLog(100)
	for i := 0; i < 20; i++ {
		l.Log(fmt.Sprint(i))
	}

	// following the end of the log
	assert.Equal([]string{"17", "18", "19"}, l.Window(3))

	l.Home()
	assert.Equal([]string{"0", "1", "2"}, l.Window(3))

	l.End()
	assert.Equal([]string{"17", "18", "19"}, l.Window(3))
}

func TestLogger_Logln(t *testing.T) {
	assert := assert.New(t)

	l := NewLog(100)
	l.Logln("hello", "world")

	assert.Equal([]string{"", "hello world"}, l.Window(5))
}

func TestLogger_Scroll(t *testing.T) {
	assert := assert.New(t)

	l := NewLog(100)
	for i := 0; i < 10; i++ {
		l.Log(fmt.Sprint(i))
	}

	l.ScrollUp()
	assert.Equal([]string{"7", "8"}, l.Window(2))

	// a scrolled log doesn't follow new lines
	l.Log("10")
	assert.Equal([]string{"7", "8"}, l.Window(2))

	l.ScrollDown(2)
	l.ScrollDown(2)
	assert.Equal([]string{"9", "10"}, l.Window(2))

	l.Home()
	l.ScrollUp()
	assert.Equal([]string{"0", "1"}, l.Window(2))
}

func TestLogger_Max(t *testing.T) {
	assert := assert.New(t)

	l := NewLog(5)
	for i := 0; i < 8; i++ {
		l.Log(fmt.Sprint(i))
	}

	assert.Equal(5, l.Len())
	assert.Equal([]string{"3", "4", "5", "6", "7"}, l.Window(10))
}
