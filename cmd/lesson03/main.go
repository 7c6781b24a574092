// Lesson 3 spins a colored pyramid and cube.
package main

import (
	"gl-tutorial/internal/host"
	"gl-tutorial/lessons"
)

func main() {
	host.Main(lessons.SpinningShapes())
}
