// Lesson 4 spins a crate-textured cube.
package main

import (
	"gl-tutorial/internal/host"
	"gl-tutorial/lessons"
)

func main() {
	host.Main(lessons.TexturedCube())
}
