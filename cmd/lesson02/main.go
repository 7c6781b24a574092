// Lesson 2 colors the triangle and square per vertex.
package main

import (
	"gl-tutorial/internal/host"
	"gl-tutorial/lessons"
)

func main() {
	host.Main(lessons.ColoredShapes())
}
