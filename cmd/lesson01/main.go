// Lesson 1 draws a white triangle and a white square.
package main

import (
	"gl-tutorial/internal/host"
	"gl-tutorial/lessons"
)

func main() {
	host.Main(lessons.WhiteShapes())
}
